package factory

import "github.com/gartstein/obotseed/internal/seed/models"

type catalog struct {
	offerings   []string
	deposits    []string
	withdrawals []string
}

var catalogs = map[string]catalog{
	"pt": {
		offerings: []string{
			"Consultoria em TI", "Desenvolvimento de Software", "Suporte Técnico Mensal",
			"Hospedagem de Sites", "Treinamento Corporativo", "Auditoria Contábil",
			"Licença de Software", "Design Gráfico", "Gestão de Redes Sociais",
			"Manutenção de Equipamentos", "Análise de Dados", "Implantação de ERP",
		},
		deposits: []string{
			"Recebimento de cliente", "Transferência PIX recebida", "Depósito em conta",
			"Rendimento de aplicação", "Estorno de tarifa",
		},
		withdrawals: []string{
			"Pagamento de fornecedor", "Tarifa bancária", "Aluguel do escritório",
			"Folha de pagamento", "Impostos (DAS)", "Conta de energia", "Internet e telefonia",
		},
	},
	"en": {
		offerings: []string{
			"IT Consulting", "Software Development", "Monthly Support Plan",
			"Web Hosting", "Corporate Training", "Bookkeeping",
			"Software License", "Graphic Design", "Social Media Management",
			"Equipment Maintenance", "Data Analysis", "ERP Rollout",
		},
		deposits: []string{
			"Customer payment", "Wire transfer received", "Cash deposit",
			"Interest earned", "Fee refund",
		},
		withdrawals: []string{
			"Vendor payment", "Bank fee", "Office rent",
			"Payroll", "Sales tax", "Electricity bill", "Internet and phone",
		},
	},
}

func catalogFor(locale string) catalog {
	if c, ok := catalogs[locale]; ok {
		return c
	}
	return catalogs["en"]
}

// documentTemplates are the labels every new company starts with.
var documentTemplates = map[models.DocumentType]models.DocumentDefault{
	models.DocumentInvoice: {
		Header:       "Invoice",
		NumberPrefix: "INV-",
		Footer:       "Thank you for your business.",
		Terms:        "Payment due within 30 days.",
	},
	models.DocumentEstimate: {
		Header:       "Estimate",
		NumberPrefix: "EST-",
		Footer:       "We look forward to working with you.",
		Terms:        "This estimate is valid for 30 days.",
	},
	models.DocumentBill: {
		Header:       "Bill",
		NumberPrefix: "BILL-",
	},
	models.DocumentRecurringInvoice: {
		Header:       "Recurring Invoice",
		NumberPrefix: "REC-",
		Footer:       "Thank you for your business.",
		Terms:        "Payment due within 30 days.",
	},
}

const (
	numberDigits = 5
	firstNumber  = 1
)

func newDocumentDefaults(companyID uint) []models.DocumentDefault {
	defs := make([]models.DocumentDefault, 0, len(models.DocumentTypes))
	for _, t := range models.DocumentTypes {
		def := documentTemplates[t]
		def.CompanyID = companyID
		def.Type = t
		def.NumberDigits = numberDigits
		def.NumberNext = firstNumber
		defs = append(defs, def)
	}
	return defs
}
