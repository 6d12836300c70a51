package catalog

// Metadata describes the provenance of the bundled pricing document.
type Metadata struct {
	Source      string `json:"source"`
	LastUpdated string `json:"lastUpdated"`
	Currency    string `json:"currency"`
	ItemCount   int    `json:"itemCount"`
}

// ComputeShape is the pricing entry for a single compute shape. OCPU and
// memory are priced independently; flexible shapes carry min/max ranges.
type ComputeShape struct {
	Shape             string  `json:"shape"`
	ShapeType         string  `json:"shapeType"` // standard, dense_io, gpu, hpc, optimized
	Processor         string  `json:"processor"` // amd, intel, ampere, nvidia
	Description       string  `json:"description"`
	PartNumber        string  `json:"partNumber,omitempty"`
	OCPUPriceHourly   float64 `json:"ocpuPriceHourly"`
	MemoryPriceHourly float64 `json:"memoryPriceHourlyPerGB"`
	GPUPriceHourly    float64 `json:"gpuPriceHourly,omitempty"`
	MinOCPUs          float64 `json:"minOcpus,omitempty"`
	MaxOCPUs          float64 `json:"maxOcpus,omitempty"`
	MaxMemoryGB       float64 `json:"maxMemoryGb,omitempty"`
	Unit              string  `json:"unit"`
	Currency          string  `json:"currency"`
	Notes             string  `json:"notes,omitempty"`
}

// StoragePricing is the pricing entry for a storage offering.
type StoragePricing struct {
	Type        string  `json:"type"` // block_volume, block_volume_vpu, object_standard, ...
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PartNumber  string  `json:"partNumber,omitempty"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"`
	Currency    string  `json:"currency"`
	Notes       string  `json:"notes,omitempty"`
}

// DatabasePricing is the pricing entry for a database offering. Compute
// (ECPU or OCPU) and storage are priced independently. A zero BYOL price
// means no BYOL variant exists for the offering.
type DatabasePricing struct {
	Type                string  `json:"type"` // autonomous_transaction, autonomous_warehouse, base_*, mysql_heatwave, exadata
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	PartNumber          string  `json:"partNumber,omitempty"`
	ECPUPriceHourly     float64 `json:"ecpuPriceHourly"`
	BYOLPriceHourly     float64 `json:"byolEcpuPriceHourly,omitempty"`
	StoragePriceGBMonth float64 `json:"storagePriceGbMonth"`
	LicenseIncluded     bool    `json:"licenseIncluded"`
	Unit                string  `json:"unit"`
	Currency            string  `json:"currency"`
	Notes               string  `json:"notes,omitempty"`
}

// NetworkPricing is the pricing entry for a networking offering. Offerings
// with an included free allowance record it so calculators can subtract it
// before pricing the remainder.
type NetworkPricing struct {
	Type          string  `json:"type"` // outbound_data_transfer, load_balancer_*, fastconnect_*, vpn, nat_gateway
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	PartNumber    string  `json:"partNumber,omitempty"`
	Price         float64 `json:"price"`
	Unit          string  `json:"unit"`
	FreeAllowance float64 `json:"freeAllowance,omitempty"`
	Currency      string  `json:"currency"`
	Notes         string  `json:"notes,omitempty"`
}

// KubernetesPricing is the pricing entry for an OKE offering.
type KubernetesPricing struct {
	Type        string  `json:"type"` // oke_basic, oke_enhanced, virtual_node
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PartNumber  string  `json:"partNumber,omitempty"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"`
	Currency    string  `json:"currency"`
	Notes       string  `json:"notes,omitempty"`
}

// ServicePricing is the generic pricing entry shared by the secondary
// platform service categories (AI/ML, analytics, security, and so on).
type ServicePricing struct {
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PartNumber  string  `json:"partNumber,omitempty"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"`
	Currency    string  `json:"currency"`
	Notes       string  `json:"notes,omitempty"`
}

// ProviderAvailability records whether a database product is offered on one
// external cloud provider, and at what unit price when it is.
type ProviderAvailability struct {
	Available       bool    `json:"available"`
	ECPUPriceHourly float64 `json:"ecpuPriceHourly,omitempty"`
	Regions         int     `json:"regions,omitempty"`
	Notes           string  `json:"notes,omitempty"`
}

// MulticloudDatabase captures cross-provider availability and pricing for a
// single database product (Oracle Database@Azure / @Google Cloud / @AWS).
type MulticloudDatabase struct {
	Product         string               `json:"product"` // exadata, autonomous, base
	Name            string               `json:"name"`
	ECPUPriceHourly float64              `json:"ecpuPriceHourly,omitempty"`
	Azure           ProviderAvailability `json:"azure"`
	GCP             ProviderAvailability `json:"gcp"`
	AWS             ProviderAvailability `json:"aws"`
	Notes           string               `json:"notes,omitempty"`
}

// Document is the bundled pricing catalog. The secondary category arrays are
// optional; accessors return an empty slice when one is absent.
type Document struct {
	Metadata   Metadata             `json:"metadata"`
	Compute    []ComputeShape       `json:"compute"`
	Storage    []StoragePricing     `json:"storage"`
	Database   []DatabasePricing    `json:"database"`
	Network    []NetworkPricing     `json:"network"`
	Kubernetes []KubernetesPricing  `json:"kubernetes"`
	Multicloud []MulticloudDatabase `json:"multicloud,omitempty"`

	AIML          []ServicePricing `json:"aiml,omitempty"`
	Analytics     []ServicePricing `json:"analytics,omitempty"`
	Security      []ServicePricing `json:"security,omitempty"`
	Observability []ServicePricing `json:"observability,omitempty"`
	Integration   []ServicePricing `json:"integration,omitempty"`
	Developer     []ServicePricing `json:"developer,omitempty"`
	Edge          []ServicePricing `json:"edge,omitempty"`
	Governance    []ServicePricing `json:"governance,omitempty"`
	Media         []ServicePricing `json:"media,omitempty"`
	Serverless    []ServicePricing `json:"serverless,omitempty"`
}

// ServiceCategories lists the secondary platform service categories in the
// order they are exposed through the tool schema.
var ServiceCategories = []string{
	"ai_ml", "analytics", "security", "observability", "integration",
	"developer", "edge", "governance", "media", "serverless",
}

// ServicesFor returns the secondary category slice named by category, or nil
// when the name is unknown. Absent arrays come back empty, never an error.
func (d *Document) ServicesFor(category string) ([]ServicePricing, bool) {
	switch category {
	case "ai_ml":
		return d.AIML, true
	case "analytics":
		return d.Analytics, true
	case "security":
		return d.Security, true
	case "observability":
		return d.Observability, true
	case "integration":
		return d.Integration, true
	case "developer":
		return d.Developer, true
	case "edge":
		return d.Edge, true
	case "governance":
		return d.Governance, true
	case "media":
		return d.Media, true
	case "serverless":
		return d.Serverless, true
	default:
		return nil, false
	}
}
