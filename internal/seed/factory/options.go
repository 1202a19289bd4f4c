package factory

// Volume is how many records of one category the factory generates.
// Off generates none, DefaultVolume uses the factory default, and any
// positive value is an exact count.
type Volume int

const (
	Off           Volume = 0
	DefaultVolume Volume = -1
)

// Builder defaults applied to categories requested with DefaultVolume.
const (
	DefaultOfferings         = 10
	DefaultClients           = 10
	DefaultVendors           = 10
	DefaultInvoices          = 10
	DefaultRecurringInvoices = 3
	DefaultEstimates         = 10
	DefaultBills             = 10
)

// Count requests exactly n records.
func Count(n int) Volume {
	if n <= 0 {
		return Off
	}
	return Volume(n)
}

func (v Volume) resolve(def int) int {
	switch {
	case v == DefaultVolume:
		return def
	case v < 0:
		return 0
	default:
		return int(v)
	}
}

// CompanyOptions lists everything the factory needs to build one company.
type CompanyOptions struct {
	// OwnerID is the user the company belongs to.
	OwnerID uint
	// Name overrides the generated company name when set.
	Name     string
	Personal bool

	// Country drives address, phone and tax id generation.
	Country string
	// Currency and Locale drive number, percentage and week conventions.
	Currency string
	Locale   string

	Transactions      int
	Offerings         Volume
	Clients           Volume
	Vendors           Volume
	Invoices          Volume
	RecurringInvoices Volume
	Estimates         Volume
	Bills             Volume
}

// volumes is CompanyOptions with every Volume resolved to a count.
type volumes struct {
	transactions      int
	offerings         int
	clients           int
	vendors           int
	invoices          int
	recurringInvoices int
	estimates         int
	bills             int
}

func (o CompanyOptions) volumes() volumes {
	v := volumes{
		transactions:      max(o.Transactions, 0),
		offerings:         o.Offerings.resolve(DefaultOfferings),
		clients:           o.Clients.resolve(DefaultClients),
		vendors:           o.Vendors.resolve(DefaultVendors),
		invoices:          o.Invoices.resolve(DefaultInvoices),
		recurringInvoices: o.RecurringInvoices.resolve(DefaultRecurringInvoices),
		estimates:         o.Estimates.resolve(DefaultEstimates),
		bills:             o.Bills.resolve(DefaultBills),
	}
	// Client-facing documents need somebody to bill, bills need a vendor.
	if v.clients == 0 && v.invoices+v.estimates+v.recurringInvoices > 0 {
		v.clients = 1
	}
	if v.vendors == 0 && v.bills > 0 {
		v.vendors = 1
	}
	return v
}
