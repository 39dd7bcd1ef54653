package domain

const (
	// TodayChoice is the selection offered on the date prompt.
	TodayChoice = "today"
	// LatestFilter asks for the most recent record regardless of type.
	LatestFilter = "latest"

	DateLayout = "2006-01-02"
)

type Suggestions struct {
	MaintenanceTypes []string
	Locations        []string
}

func DefaultSuggestions() Suggestions {
	return Suggestions{
		MaintenanceTypes: []string{
			"Engine Oil",
			"Air Filter",
			"Spark Plug",
			"Brake Pad",
			"Coolant Flush",
			"Brake Flush",
			"Tyre Change",
		},
		Locations: []string{
			"Sports Motor Woodlands",
			"WeiTek JB",
			"AhBoy JB",
			"Myself",
		},
	}
}

// WithDefaults fills empty lists from DefaultSuggestions.
func (s Suggestions) WithDefaults() Suggestions {
	defaults := DefaultSuggestions()
	if len(s.MaintenanceTypes) == 0 {
		s.MaintenanceTypes = defaults.MaintenanceTypes
	}
	if len(s.Locations) == 0 {
		s.Locations = defaults.Locations
	}
	return s
}
