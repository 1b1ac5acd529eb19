package prep

// Group is a named set of food-item columns from the survey instrument.
type Group struct {
	Name  string
	Items []string
}

// Catalog is the fixed food-group catalog shared by the preparation stage
// and every analysis that recomputes group-level consumption. There is one
// catalog per run; construct it with DefaultCatalog and pass it explicitly
// so preparation and analysis can never drift apart.
type Catalog struct {
	groups []Group
}

// NewCatalog builds a catalog from explicit groups. Tests use it for small
// synthetic catalogs.
func NewCatalog(groups []Group) Catalog {
	cp := make([]Group, len(groups))
	for i, g := range groups {
		cp[i] = Group{Name: g.Name, Items: append([]string(nil), g.Items...)}
	}
	return Catalog{groups: cp}
}

// Groups returns the catalog's groups in declaration order.
func (c Catalog) Groups() []Group { return c.groups }

// Size returns the number of food groups, the upper bound of the DDS.
func (c Catalog) Size() int { return len(c.groups) }

// Items returns every food-item column across all groups.
func (c Catalog) Items() []string {
	var all []string
	for _, g := range c.groups {
		all = append(all, g.Items...)
	}
	return all
}

// CodedColumn is the derived-column naming convention downstream consumers
// rely on.
func CodedColumn(item string) string { return item + "_coded" }

// DefaultCatalog returns the survey's food-group catalog. Item names match
// the questionnaire's column headers exactly, stray spaces included.
func DefaultCatalog() Catalog {
	return NewCatalog([]Group{
		{Name: "Dairy", Items: []string{"Milk ", "Yoghurt", "Ice cream", "Dairy_Other"}},
		{Name: "Tubers", Items: []string{
			"Yam", "Cocoyam", "Water yam", "Sweet Potatoe",
			"Irish Potatoes (Daily/1wk/2-3x/4-6x/Occasional/Never)", "Tubers_Other",
		}},
		{Name: "Legumes", Items: []string{
			"Beans", "Pigeon pea", "Bambara nut", "Soybean products",
			"Breadfruit (Daily/1wk/2-3x/4-6x/Occasional/Never)",
			"Groundnut", "African yam bean", "Legumes_Other",
		}},
		{Name: "Cereals", Items: []string{"Rice", "Maize", "Millet", "Guinea corn", "Wheat", "Oats", "Cereals_Other"}},
		{Name: "Meats", Items: []string{"Beef", "Goat meat", "Chicken", "Turkey", "Egg", "Fish", "Pork meat", "Snail", "Kpomo"}},
		{Name: "Vegetables", Items: []string{
			"Tomatoes", "Ugu", "Scent leaf", "Water leaf", "Green", "Bitter leaf ",
			"Carrot", "Cabbage", "Cucumber", "Garden", "Okro", "Pumpkin", "Veg_Other",
		}},
		{Name: "Fruits", Items: []string{
			"Apple", "Orange", "Grapes", "Banana", "Soursop", "Avocado", "African pear",
			"Forest pear", "Watermelon", "Pineapple", "Agbalumo", "Pawpaw", "Mango",
			"Guava", "Cashew", "Fruit_Other",
		}},
		{Name: "Spices", Items: []string{"Garlic ", "Rosemary", "Thyme", "Turmeric", "Nutmeg", "Okpei", "Ogiri", "Spice_Other"}},
		{Name: "Drinks", Items: []string{"Water", "Soft drinks", "Alcoholic beverages", "Wines", "Palm wine", "Beer", "Drink_Other"}},
		{Name: "Snacks", Items: []string{
			"Biscuits ", "Chin-chin", "Buns", "Doughnut", "Peanut", "Plantain",
			"Chocolate", "Eggrolls", "Snack_Other",
		}},
	})
}
