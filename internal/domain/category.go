package domain

type Category struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Categories is the fixed set of leave categories shown in the calendar legend.
var Categories = []Category{
	{Code: "SL", Name: "Sick Leave", Color: "#ef4444"},
	{Code: "PL", Name: "Planned Leave", Color: "#22c55e"},
	{Code: "CGL", Name: "Caregiver Leave", Color: "#f59e0b"},
	{Code: "PH", Name: "Public Holiday", Color: "#8b5cf6"},
	{Code: "TFL", Name: "Time For Learning", Color: "#06b6d4"},
	{Code: "CO", Name: "Comp Off", Color: "#ec4899"},
	{Code: "WCO", Name: "Weekend Comp Off", Color: "#f97316"},
	{Code: "WS", Name: "Weekend Shift", Color: "#6366f1"},
}

func CategoryByCode(code string) (Category, bool) {
	for _, c := range Categories {
		if c.Code == code {
			return c, true
		}
	}
	return Category{}, false
}
