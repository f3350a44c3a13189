package event

type Kind string

const (
	KindCorporate Kind = "CORPORATE"
	KindParty     Kind = "PARTY"
)

func (k Kind) IsValid() bool {
	return k == KindCorporate || k == KindParty
}

type Category string

const (
	CategoryWebinar         Category = "Webinar"
	CategoryWorkshop        Category = "Workshop"
	CategoryConference      Category = "Conference"
	CategoryGeneralMeetings Category = "General Meetings"
	CategorySeminar         Category = "Seminar"

	CategoryMusic           Category = "Music"
	CategoryClubParty       Category = "Club Party"
	CategoryDanceNight      Category = "Dance Night"
	CategoryWedding         Category = "Wedding"
	CategoryBirthdayParties Category = "Birthday Parties"
	CategoryFestivals       Category = "Festivals"
)

var CorporateCategories = []Category{
	CategoryWebinar,
	CategoryWorkshop,
	CategoryConference,
	CategoryGeneralMeetings,
	CategorySeminar,
}

var PartyCategories = []Category{
	CategoryMusic,
	CategoryClubParty,
	CategoryDanceNight,
	CategoryWedding,
	CategoryBirthdayParties,
	CategoryFestivals,
}

// Kind returns the kind a category belongs to, or "" for unknown categories.
func (c Category) Kind() Kind {
	for _, v := range CorporateCategories {
		if c == v {
			return KindCorporate
		}
	}
	for _, v := range PartyCategories {
		if c == v {
			return KindParty
		}
	}
	return ""
}

func (c Category) IsValid() bool {
	return c.Kind() != ""
}
