package catalog

// Raw document shapes for the static menu YAML. Prices are kept as `any`
// because the catalog allows either a scalar amount or a list of bounds;
// conversion to entity.Price happens during load.

type document struct {
	Categories []rawCategory `koanf:"categories"`
}

type rawCategory struct {
	ID        string    `koanf:"id"`
	Name      string    `koanf:"name"`
	NameAr    string    `koanf:"nameAr"`
	HeroImage string    `koanf:"heroImage"`
	Items     []rawItem `koanf:"items"`
}

type rawItem struct {
	ID            string `koanf:"id"`
	Name          string `koanf:"name"`
	NameAr        string `koanf:"nameAr"`
	Description   string `koanf:"description"`
	DescriptionAr string `koanf:"descriptionAr"`
	Price         any    `koanf:"price"`
	Image         string `koanf:"image"`
}
