// Package catalog ships the static MCC classification tables: merchant
// category codes resolve to category names, and category names roll up
// into spending groups. Both tables are immutable after init, so lookups
// are safe from any number of goroutines without locking.
package catalog

import "sort"

// Uncategorized is the reserved fallback category and group. Unknown or
// absent MCC codes resolve here instead of failing.
const Uncategorized = "Uncategorized"

var mccNames = map[string]string{
	"1750": "Carpentry Contractors",
	"3068": "Airlines",
	"4121": "Taxicabs and Limousines",
	"4215": "Courier Services",
	"4829": "Money Orders / Wire Transfer",
	"5199": "Nondurable Goods",
	"5200": "Home Supply Warehouse Stores",
	"5262": "Marketplaces",
	"5311": "Department Stores",
	"5331": "Variety Stores",
	"5411": "Grocery Stores, Supermarkets",
	"5499": "Miscellaneous Food Stores",
	"5541": "Service Stations (Gas)",
	"5641": "Children's and Infant's Wear Stores",
	"5651": "Family Clothing Stores",
	"5691": "Men's and Women's Clothing Stores",
	"5732": "Electronics Stores",
	"5812": "Eating Places, Restaurants",
	"5814": "Fast Food Restaurants",
	"5912": "Drug Stores and Pharmacies",
	"5943": "Stationery, Office Supplies",
	"5977": "Cosmetic Stores",
	"5995": "Pet Shops",
	"7832": "Motion Picture Theaters",
	"7941": "Athletic Fields, Commercial Sports",
	"8071": "Dental and Medical Laboratories",
	"8099": "Medical Services",
}

var groupNames = map[string][]string{
	"Food & Dining": {
		"Grocery Stores, Supermarkets",
		"Fast Food Restaurants",
		"Eating Places, Restaurants",
		"Miscellaneous Food Stores",
	},
	"Transport": {
		"Taxicabs and Limousines",
		"Airlines",
		"Service Stations (Gas)",
	},
	"Shopping": {
		"Cosmetic Stores",
		"Stationery, Office Supplies",
		"Nondurable Goods",
		"Men's and Women's Clothing Stores",
		"Family Clothing Stores",
		"Department Stores",
		"Electronics Stores",
		"Marketplaces",
		"Variety Stores",
		"Children's and Infant's Wear Stores",
		"Home Supply Warehouse Stores",
	},
	"Health & Beauty": {
		"Drug Stores and Pharmacies",
		"Medical Services",
		"Dental and Medical Laboratories",
	},
	"Entertainment": {
		"Athletic Fields, Commercial Sports",
		"Motion Picture Theaters",
	},
	"Services": {
		"Courier Services",
		"Carpentry Contractors",
		"Money Orders / Wire Transfer",
	},
	"Pets": {
		"Pet Shops",
	},
}

var nameToGroup map[string]string

func init() {
	nameToGroup = make(map[string]string)
	for group, names := range groupNames {
		for _, name := range names {
			nameToGroup[name] = group
		}
	}
}

// Resolve maps an MCC code to its category and spending group. It is total:
// unknown codes and the empty code resolve to Uncategorized rather than
// failing, so parsing never blocks on incomplete category data.
func Resolve(code string) (category, group string) {
	name, ok := mccNames[code]
	if !ok {
		return Uncategorized, Uncategorized
	}
	group, ok = nameToGroup[name]
	if !ok {
		group = Uncategorized
	}
	return name, group
}

// Known reports whether the code is in the shipped table.
func Known(code string) bool {
	_, ok := mccNames[code]
	return ok
}

// CategoryName returns the category for an MCC code, or Uncategorized.
func CategoryName(code string) string {
	name, _ := Resolve(code)
	return name
}

// GroupName returns the spending group for an MCC code, or Uncategorized.
func GroupName(code string) string {
	_, group := Resolve(code)
	return group
}

// Entry is one row of the shipped classification table.
type Entry struct {
	Code     string
	Category string
	Group    string
}

// Entries lists the full table ordered by MCC code, for display.
func Entries() []Entry {
	codes := make([]string, 0, len(mccNames))
	for code := range mccNames {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	entries := make([]Entry, 0, len(codes))
	for _, code := range codes {
		name, group := Resolve(code)
		entries = append(entries, Entry{Code: code, Category: name, Group: group})
	}
	return entries
}

// MCCNames returns a copy of the code-to-category table.
func MCCNames() map[string]string {
	out := make(map[string]string, len(mccNames))
	for code, name := range mccNames {
		out[code] = name
	}
	return out
}

// Groups returns a copy of the group-to-categories table.
func Groups() map[string][]string {
	out := make(map[string][]string, len(groupNames))
	for group, names := range groupNames {
		out[group] = append([]string(nil), names...)
	}
	return out
}
