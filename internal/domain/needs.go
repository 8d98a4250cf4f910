package domain

// CommonNeeds is the catalog offered to coordinators when tagging zones.
// Labels outside the catalog are accepted.
var CommonNeeds = []string{
	"Street cleaning",
	"Home cleaning",
	"Basic medicines",
	"Medical care",
	"Psychological support",
	"Drinking water",
	"Non-perishable food",
	"Clothing and blankets",
	"Supply transport",
	"Temporary animal shelter",
	"Hygiene products",
}
