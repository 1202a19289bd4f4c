package factory

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/gartstein/obotseed/internal/seed/models"
)

type city struct {
	name     string
	state    string
	areaCode string
}

// countryProfile generates the country dependent fields of companies and
// their contacts.
type countryProfile struct {
	code           string
	cities         []city
	streets        []string
	neighbourhoods []string
	firstNames     []string
	lastNames      []string
	suffixes       []string
	emailDomain    string
	phone          func(r *rand.Rand, c city) string
	postalCode     func(r *rand.Rand) string
	taxID          func(r *rand.Rand) string
}

var profiles = map[string]*countryProfile{
	"BR": {
		code: "BR",
		cities: []city{
			{"São Paulo", "SP", "11"},
			{"Rio de Janeiro", "RJ", "21"},
			{"Belo Horizonte", "MG", "31"},
			{"Curitiba", "PR", "41"},
			{"Porto Alegre", "RS", "51"},
			{"Salvador", "BA", "71"},
			{"Recife", "PE", "81"},
			{"Fortaleza", "CE", "85"},
			{"Brasília", "DF", "61"},
			{"Florianópolis", "SC", "48"},
		},
		streets: []string{
			"Rua das Flores", "Avenida Paulista", "Rua XV de Novembro",
			"Avenida Brasil", "Rua da Consolação", "Avenida Atlântica",
			"Rua Augusta", "Avenida Sete de Setembro",
		},
		neighbourhoods: []string{
			"Centro", "Jardim América", "Vila Mariana", "Boa Viagem",
			"Batel", "Savassi", "Moinhos de Vento", "Copacabana",
		},
		firstNames: []string{
			"João", "Maria", "Ana", "Pedro", "Lucas", "Juliana",
			"Gabriel", "Fernanda", "Rafael", "Camila", "Thiago", "Beatriz",
		},
		lastNames: []string{
			"Silva", "Santos", "Oliveira", "Souza", "Pereira", "Lima",
			"Carvalho", "Ferreira", "Almeida", "Costa", "Ribeiro", "Gomes",
		},
		suffixes:    []string{"Ltda", "S.A.", "ME", "EIRELI", "Comércio Ltda", "Serviços Ltda"},
		emailDomain: "com.br",
		phone: func(r *rand.Rand, c city) string {
			return fmt.Sprintf("+55 (%s) 9%04d-%04d", c.areaCode, r.IntN(10000), r.IntN(10000))
		},
		postalCode: func(r *rand.Rand) string {
			return fmt.Sprintf("%05d-%03d", r.IntN(100000), r.IntN(1000))
		},
		taxID: cnpj,
	},
	"US": {
		code: "US",
		cities: []city{
			{"New York", "NY", "212"},
			{"Austin", "TX", "512"},
			{"Seattle", "WA", "206"},
			{"Chicago", "IL", "312"},
			{"Denver", "CO", "303"},
			{"Boston", "MA", "617"},
		},
		streets:        []string{"Main Street", "Oak Avenue", "Maple Drive", "Pine Street", "Elm Road"},
		neighbourhoods: []string{"Downtown", "Midtown", "Riverside", "Uptown"},
		firstNames:     []string{"James", "Mary", "Robert", "Linda", "Michael", "Sarah", "David", "Emily"},
		lastNames:      []string{"Smith", "Johnson", "Brown", "Miller", "Davis", "Wilson", "Moore", "Clark"},
		suffixes:       []string{"LLC", "Inc.", "Corp.", "Group", "Partners"},
		emailDomain:    "com",
		phone: func(r *rand.Rand, c city) string {
			return fmt.Sprintf("+1 (%s) %03d-%04d", c.areaCode, 200+r.IntN(800), r.IntN(10000))
		},
		postalCode: func(r *rand.Rand) string {
			return fmt.Sprintf("%05d", r.IntN(100000))
		},
		taxID: func(r *rand.Rand) string {
			return fmt.Sprintf("%02d-%07d", 10+r.IntN(90), r.IntN(10000000))
		},
	},
}

// profileFor returns the profile of country, falling back to US for codes
// without a dedicated profile. The returned code is always the requested one.
func profileFor(country string) *countryProfile {
	code := strings.ToUpper(strings.TrimSpace(country))
	if p, ok := profiles[code]; ok {
		return p
	}
	fallback := *profiles["US"]
	if code != "" {
		fallback.code = code
	}
	return &fallback
}

func pick[T any](r *rand.Rand, items []T) T {
	return items[r.IntN(len(items))]
}

func (p *countryProfile) companyName(r *rand.Rand) string {
	return pick(r, p.lastNames) + " " + pick(r, p.suffixes)
}

func (p *countryProfile) personName(r *rand.Rand) string {
	return pick(r, p.firstNames) + " " + pick(r, p.lastNames)
}

func (p *countryProfile) address(r *rand.Rand) models.CompanyProfile {
	c := pick(r, p.cities)
	return models.CompanyProfile{
		Street:        pick(r, p.streets),
		Number:        fmt.Sprintf("%d", 1+r.IntN(3000)),
		Neighbourhood: pick(r, p.neighbourhoods),
		City:          c.name,
		State:         c.state,
		PostalCode:    p.postalCode(r),
		CountryCode:   p.code,
		Phone:         p.phone(r, c),
		TaxID:         p.taxID(r),
	}
}

func (p *countryProfile) contact(r *rand.Rand, business bool) models.Contact {
	c := pick(r, p.cities)
	name := p.personName(r)
	if business {
		name = p.companyName(r)
	}
	return models.Contact{
		Name:        name,
		Email:       fmt.Sprintf("%s%d@example.%s", slug(name, "."), r.IntN(1000), p.emailDomain),
		Phone:       p.phone(r, c),
		City:        c.name,
		State:       c.state,
		CountryCode: p.code,
	}
}

var (
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// cnpj generates a Brazilian company registration number with valid check
// digits, formatted as XX.XXX.XXX/0001-XX.
func cnpj(r *rand.Rand) string {
	digits := make([]int, 0, 14)
	for i := 0; i < 8; i++ {
		digits = append(digits, r.IntN(10))
	}
	digits = append(digits, 0, 0, 0, 1)
	digits = append(digits, cnpjCheckDigit(digits, cnpjWeights1))
	digits = append(digits, cnpjCheckDigit(digits, cnpjWeights2))

	var b strings.Builder
	for i, d := range digits {
		switch i {
		case 2, 5:
			b.WriteByte('.')
		case 8:
			b.WriteByte('/')
		case 12:
			b.WriteByte('-')
		}
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

func cnpjCheckDigit(digits, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += digits[i] * w
	}
	if rem := sum % 11; rem >= 2 {
		return 11 - rem
	}
	return 0
}
