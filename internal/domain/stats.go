package domain

type ZoneSummary struct {
	TotalZones      int `json:"total_zones"`
	NeededZones     int `json:"needed_zones"`
	OptimalZones    int `json:"optimal_zones"`
	OverflowZones   int `json:"overflow_zones"`
	TotalVolunteers int `json:"total_volunteers"`
}

type AdminStats struct {
	Zones          ZoneSummary      `json:"zones"`
	Minutes        int              `json:"minutes"`
	Mutations      int64            `json:"mutations"`
	FailedLogins   int64            `json:"failed_logins"`
	MutationsByKey map[string]int64 `json:"mutations_by_action"`
}

type StatsRequest struct {
	Minutes int `query:"minutes" validate:"min=1,max=1440"`
}

func Summarize(zones []Zone) ZoneSummary {
	s := ZoneSummary{TotalZones: len(zones)}
	for _, z := range zones {
		s.TotalVolunteers += z.VolunteerCount
		switch z.Status {
		case ZoneNeeded:
			s.NeededZones++
		case ZoneOptimal:
			s.OptimalZones++
		case ZoneOverflow:
			s.OverflowZones++
		}
	}
	return s
}
