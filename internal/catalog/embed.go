package catalog

import _ "embed"

// Bundled OCI price list, regenerated from the public price list page.

//go:embed data/oci_pricing.json
var rawPricingJSON []byte
