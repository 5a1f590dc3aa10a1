package prospect

// Static reference data: the predefined services a proposal can cover and
// the countries a client can belong to. Neither list is user-mutable;
// clients reference entries by identifier.

// Service is a predefined service offering.
type Service struct {
	ID   int
	Name string
}

// Country is a predefined country with its default proposal currency.
type Country struct {
	ID       string
	Name     string
	Currency Currency
}

// Services lists the predefined service offerings.
var Services = []Service{
	{1, "Diseño Web"},
	{2, "Desarrollo Web"},
	{3, "Marketing Digital"},
	{4, "SEO"},
	{5, "Redes Sociales"},
	{6, "Branding"},
	{7, "Consultoría"},
	{8, "E-commerce"},
}

// Countries lists the predefined countries.
var Countries = []Country{
	{"AR", "Argentina", ARS},
	{"US", "Estados Unidos", USD},
	{"ES", "España", EUR},
	{"MX", "México", USD},
	{"CO", "Colombia", USD},
	{"CL", "Chile", USD},
	{"BR", "Brasil", USD},
	{"PE", "Perú", USD},
	{"UY", "Uruguay", USD},
	{"DE", "Alemania", EUR},
	{"FR", "Francia", EUR},
	{"IT", "Italia", EUR},
	{"UK", "Reino Unido", EUR},
}

// ServiceByID returns the predefined service with this id.
func ServiceByID(id int) (Service, bool) {
	for _, s := range Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// CountryByID returns the predefined country with this id.
func CountryByID(id string) (Country, bool) {
	for _, c := range Countries {
		if c.ID == id {
			return c, true
		}
	}
	return Country{}, false
}

// DefaultCurrency returns the default currency for a country. It is the
// derivation the client entry forms apply when the country changes; the
// Store never calls it.
func DefaultCurrency(countryID string) (Currency, bool) {
	c, ok := CountryByID(countryID)
	if !ok {
		return "", false
	}
	return c.Currency, true
}
