// Package option provides Option[T], a presence/absence wrapper used by
// fallible lookups that must not fail.
//
// An Option either holds exactly one value (Some) or holds nothing (None).
// Presence is always queryable without risk; reading the value out of an
// empty Option returns ErrInvalidArgument.
//
//	o := option.Some(42)
//	if v, ok := o.Get(); ok {
//		fmt.Println(v)
//	}
//
//	_, err := option.None[int]().Value() // errors.Is(err, option.ErrInvalidArgument)
//
// Options are small values; copy them freely.
package option
