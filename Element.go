package go_yagicalc

import "github.com/tommyfalls2011/go_yagicalc/bmath/unit"

//RoleReflector marks the single parasitic element behind the driven element
const RoleReflector byte = 1

//RoleDriven marks the fed element; exactly one per antenna
const RoleDriven byte = 2

//RoleDirector marks a parasitic element in front of the driven element
const RoleDirector byte = 3

//Element describes one antenna element mounted on the boom.
//
//The position is measured along the boom from an arbitrary origin,
//so only differences between positions are meaningful.
type Element struct {
	role     byte
	length   unit.Distance
	diameter unit.Distance
	position unit.Distance
}

//CreateElement creates an element of the specified role and dimensions
func CreateElement(role byte, length unit.Distance, diameter unit.Distance, position unit.Distance) Element {
	return Element{
		role:     role,
		length:   length,
		diameter: diameter,
		position: position,
	}
}

//Role returns the element role (RoleReflector, RoleDriven or RoleDirector)
func (v Element) Role() byte {
	return v.role
}

//Length returns the tip-to-tip length of the element
func (v Element) Length() unit.Distance {
	return v.length
}

//Diameter returns the tube diameter of the element
func (v Element) Diameter() unit.Distance {
	return v.diameter
}

//Position returns the mounting position of the element along the boom
func (v Element) Position() unit.Distance {
	return v.position
}

//findDriven returns the driven element of the list and a flag telling whether one exists
func findDriven(elements []Element) (Element, bool) {
	for _, e := range elements {
		if e.role == RoleDriven {
			return e, true
		}
	}
	return Element{}, false
}

//findReflector returns the reflector of the list and a flag telling whether one exists
func findReflector(elements []Element) (Element, bool) {
	for _, e := range elements {
		if e.role == RoleReflector {
			return e, true
		}
	}
	return Element{}, false
}

//findDirectors returns the directors ordered as they appear in the list
func findDirectors(elements []Element) []Element {
	var directors []Element
	for _, e := range elements {
		if e.role == RoleDirector {
			directors = append(directors, e)
		}
	}
	return directors
}

//boomLengthOf returns the boom length spanned by the elements in inches
func boomLengthOf(elements []Element) float64 {
	if len(elements) == 0 {
		return 0
	}
	var minPos = elements[0].position.In(unit.DistanceInch)
	var maxPos = minPos
	for _, e := range elements[1:] {
		p := e.position.In(unit.DistanceInch)
		if p < minPos {
			minPos = p
		}
		if p > maxPos {
			maxPos = p
		}
	}
	return maxPos - minPos
}
