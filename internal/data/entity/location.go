package entity

// States lists the supported states in display order.
var States = []string{
	"Andhra Pradesh",
	"Karnataka",
	"Kerala",
	"Maharashtra",
	"Tamil Nadu",
	"Telangana",
}

// StateCities maps each state to its selectable cities.
var StateCities = map[string][]string{
	"Andhra Pradesh": {"Visakhapatnam", "Vijayawada", "Guntur", "Tirupati"},
	"Karnataka":      {"Bangalore", "Mysore", "Mangalore", "Hubli"},
	"Kerala":         {"Kochi", "Thiruvananthapuram", "Kozhikode", "Thrissur"},
	"Maharashtra":    {"Mumbai", "Pune", "Nagpur", "Nashik"},
	"Tamil Nadu":     {"Chennai", "Coimbatore", "Madurai", "Tiruchirappalli"},
	"Telangana":      {"Hyderabad", "Warangal", "Nizamabad", "Karimnagar"},
}
