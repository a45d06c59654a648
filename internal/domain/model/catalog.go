package model

// Built-in box types. Both can be requested stackable or not.
var (
	American = BoxType{ID: "american", Name: "American", Width: 1.0, Length: 1.2}
	European = BoxType{ID: "european", Name: "European", Width: 1.2, Length: 0.8}
)

// BuiltinBoxTypes returns the built-in catalog in display order.
func BuiltinBoxTypes() []BoxType {
	return []BoxType{American, European}
}

// LookupBoxType finds a built-in box type by id.
func LookupBoxType(id string) (BoxType, bool) {
	for _, bt := range BuiltinBoxTypes() {
		if bt.ID == id {
			return bt, true
		}
	}
	return BoxType{}, false
}

// Line returns a request line for count boxes of this type.
func (b BoxType) Line(stackable bool, count int) BoxLine {
	return BoxLine{
		BoxTypeID: b.ID,
		Name:      b.Name,
		Width:     b.Width,
		Length:    b.Length,
		Stackable: stackable,
		Count:     count,
	}
}

// SameFootprint reports whether two box types have identical dimensions.
func (b BoxType) SameFootprint(o BoxType) bool {
	return b.Width == o.Width && b.Length == o.Length
}
