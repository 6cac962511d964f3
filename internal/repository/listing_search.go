package repository

import "strconv"

// SearchFilter carries the optional /listings/search constraints. String
// fields match as case-insensitive substrings when non-empty; each non-nil
// bound becomes one AND-conjoined inequality. Everything left at its zero
// value stays out of the generated WHERE clause.
type SearchFilter struct {
	Name          string
	Description   string
	PictureURL    string
	Neighbourhood string
	RoomType      string

	LatitudeLow   *float64
	LatitudeHigh  *float64
	LongitudeLow  *float64
	LongitudeHigh *float64
	BathroomsLow  *float64
	BathroomsHigh *float64
	PriceLow      *float64
	PriceHigh     *float64

	AccommodatesLow  *int64
	AccommodatesHigh *int64
	BedroomsLow      *int64
	BedroomsHigh     *int64
	BedsLow          *int64
	BedsHigh         *int64
	HostIDLow        *int64
	HostIDHigh       *int64
	IDLow            *int64
	IDHigh           *int64
}

// Build renders the filter as a WHERE condition with numbered placeholders
// and the matching argument slice. With no filters set it returns "1=1" so
// callers can always interpolate the condition into a fixed template.
func (f SearchFilter) Build() (string, []any) {
	b := newCondBuilder()

	like := func(col, v string) {
		if v != "" {
			b.addArg(col+" ILIKE ", "%"+v+"%")
		}
	}
	like("name", f.Name)
	like("description", f.Description)
	like("picture_url", f.PictureURL)
	like("neighbourhood_cleansed", f.Neighbourhood)
	like("room_type_simple", f.RoomType)

	frange := func(col string, low, high *float64) {
		if low != nil {
			b.addArg(col+" >= ", *low)
		}
		if high != nil {
			b.addArg(col+" <= ", *high)
		}
	}
	frange("latitude", f.LatitudeLow, f.LatitudeHigh)
	frange("longitude", f.LongitudeLow, f.LongitudeHigh)
	frange("bathrooms", f.BathroomsLow, f.BathroomsHigh)
	frange("price", f.PriceLow, f.PriceHigh)

	irange := func(col string, low, high *int64) {
		if low != nil {
			b.addArg(col+" >= ", *low)
		}
		if high != nil {
			b.addArg(col+" <= ", *high)
		}
	}
	irange("accommodates", f.AccommodatesLow, f.AccommodatesHigh)
	irange("bedrooms", f.BedroomsLow, f.BedroomsHigh)
	irange("beds", f.BedsLow, f.BedsHigh)
	irange("host_id", f.HostIDLow, f.HostIDHigh)
	irange("id", f.IDLow, f.IDHigh)

	return b.cond(), b.args
}

// condBuilder accumulates AND-conjoined conditions with $N placeholders.
// User input only ever lands in args, never in the SQL text.
type condBuilder struct {
	where []string
	args  []any
}

func newCondBuilder() *condBuilder { return &condBuilder{} }

// add appends a condition that takes no bound argument.
func (b *condBuilder) add(expr string) {
	b.where = append(b.where, expr)
}

// addArg appends prefix followed by the next placeholder and binds v to it.
func (b *condBuilder) addArg(prefix string, v any) {
	b.args = append(b.args, v)
	b.where = append(b.where, prefix+placeholder(len(b.args)))
}

// cond joins the accumulated conditions; an empty builder yields "1=1".
func (b *condBuilder) cond() string {
	if len(b.where) == 0 {
		return "1=1"
	}
	out := b.where[0]
	for _, w := range b.where[1:] {
		out += " AND " + w
	}
	return out
}

func placeholder(n int) string { return "$" + strconv.Itoa(n) }
