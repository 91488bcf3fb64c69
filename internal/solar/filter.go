package solar

import "github.com/i474232898/solar-potential-analysis/internal/common"

// Selection narrows the reference table for one batch.
type Selection struct {
	CityName string
	CityID   string
	Limit    int // <= 0 means no limit
}

// Select applies the name/id filter against the full list first, then the limit.
// Name and id are OR-combined; the name match ignores case and diacritics.
func Select(all []Location, sel Selection) []Location {
	list := all
	if sel.CityName != "" || sel.CityID != "" {
		want := common.FoldName(sel.CityName)
		list = make([]Location, 0, 1)
		for _, loc := range all {
			nameMatch := sel.CityName != "" && common.FoldName(loc.Name) == want
			idMatch := sel.CityID != "" && loc.ID == sel.CityID
			if nameMatch || idMatch {
				list = append(list, loc)
			}
		}
	}

	if sel.Limit > 0 && len(list) > sel.Limit {
		list = list[:sel.Limit]
	}
	return list
}
