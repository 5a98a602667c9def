// Package arrow populates Go values from decoded JSON trees.
//
// Every field is parsed with a call selected by its static type, e.g.
//
//	func (u *User) Populate(v arrow.Value) {
//		arrow.Parse(&u.ID, v.Key("id"))
//		arrow.ParseOptional(&u.Nickname, v.Key("nickname"))
//		arrow.ParseDate(&u.Created, v.Key("created").WithDateFormat("yyyy-MM-dd"))
//		arrow.ParseEnum[string](&u.Role, v.Key("role"))
//		arrow.ParseModelSlice(&u.Friends, v.Key("friends"))
//	}
//
// A conversion either succeeds and writes its destination, or leaves the destination
// untouched; nothing is reported. Slices of scalars convert all or nothing, while slices
// of models and enums drop elements that fail. Maps convert all or nothing.
package arrow
