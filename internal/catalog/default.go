package catalog

import "github.com/zangjing/ztq-pricing-service/internal/domain/model"

// DefaultCatalog returns the embedded reference dataset used when no remote
// override is available. Prices are per root; grades are roots per jin.
func DefaultCatalog() *model.Catalog {
	return &model.Catalog{
		Specs: []model.ProductSpec{
			{ID: "900", Name: "900", RootsPerJin: 900, RootsPerGramMin: 1.8, RootsPerGramMax: 1.8, NagquPrice: 174, ChannelPrice: 247, MinSalesPrice: 304, RetailPrice: 380},
			{ID: "1000", Name: "1000", RootsPerJin: 1000, RootsPerGramMin: 2.0, RootsPerGramMax: 2.0, NagquPrice: 137, ChannelPrice: 195, MinSalesPrice: 240, RetailPrice: 300},
			{ID: "1200", Name: "1200", RootsPerJin: 1200, RootsPerGramMin: 2.4, RootsPerGramMax: 2.4, NagquPrice: 102, ChannelPrice: 146, MinSalesPrice: 180, RetailPrice: 225},
			{ID: "1400", Name: "1400", RootsPerJin: 1400, RootsPerGramMin: 2.8, RootsPerGramMax: 2.8, NagquPrice: 77, ChannelPrice: 108, MinSalesPrice: 132, RetailPrice: 165},
			{ID: "1500", Name: "1500", RootsPerJin: 1500, RootsPerGramMin: 3.0, RootsPerGramMax: 3.0, NagquPrice: 62, ChannelPrice: 91, MinSalesPrice: 112, RetailPrice: 140},
			{ID: "1600-1800", Name: "1600-1800", RootsPerJin: 1700, RootsPerGramMin: 3.2, RootsPerGramMax: 3.6, NagquPrice: 47, ChannelPrice: 65, MinSalesPrice: 80, RetailPrice: 100},
			{ID: "2000-2200", Name: "2000-2200", RootsPerJin: 2100, RootsPerGramMin: 4.0, RootsPerGramMax: 4.4, NagquPrice: 41, ChannelPrice: 52, MinSalesPrice: 64, RetailPrice: 80},
			{ID: "2200-2500", Name: "2200-2500", RootsPerJin: 2350, RootsPerGramMin: 4.4, RootsPerGramMax: 5.0, NagquPrice: 32, ChannelPrice: 45.5, MinSalesPrice: 56, RetailPrice: 70},
			{ID: "2500-3000", Name: "2500-3000", RootsPerJin: 2750, RootsPerGramMin: 5.0, RootsPerGramMax: 6.0, NagquPrice: 26, ChannelPrice: 39, MinSalesPrice: 48, RetailPrice: 60},
		},
		BottleRules: []model.BottleRule{
			{SpecID: "900", SmallBottleCount: 5, MediumBottleCount: 12, SmallBottlesSmallBox: []int{2, 3, 4}, SmallBottlesLargeBox: []int{8, 10}, MediumBottlesPerBox: []int{2, 3, 4, 5}},
			{SpecID: "1000", SmallBottleCount: 5, MediumBottleCount: 12, SmallBottlesSmallBox: []int{2, 3, 4}, SmallBottlesLargeBox: []int{8, 10}, MediumBottlesPerBox: []int{2, 3, 4, 5}},
			{SpecID: "1200", SmallBottleCount: 5, MediumBottleCount: 15, SmallBottlesSmallBox: []int{2, 3, 4}, SmallBottlesLargeBox: []int{8, 10}, MediumBottlesPerBox: []int{2, 3, 4, 5}},
			{SpecID: "1400", SmallBottleCount: 5, MediumBottleCount: 15, SmallBottlesSmallBox: []int{2, 3, 4}, SmallBottlesLargeBox: []int{8, 10}, MediumBottlesPerBox: []int{2, 3, 4, 5}},
			{SpecID: "1500", SmallBottleCount: 5, MediumBottleCount: 15, SmallBottlesSmallBox: []int{2, 3, 4}, SmallBottlesLargeBox: []int{8, 10}, MediumBottlesPerBox: []int{2, 3, 4, 5}},
			{SpecID: "1600-1800", SmallBottleCount: 6, MediumBottleCount: 15, SmallBottlesSmallBox: []int{2, 3, 4}, SmallBottlesLargeBox: []int{8, 10}, MediumBottlesPerBox: []int{2, 3, 4, 5}},
			{SpecID: "2000-2200", SmallBottleCount: 8, MediumBottleCount: 20, SmallBottlesSmallBox: []int{2, 3, 4}, SmallBottlesLargeBox: []int{8, 10}, MediumBottlesPerBox: []int{2, 3, 4, 5}},
			{SpecID: "2200-2500", SmallBottleCount: 8, MediumBottleCount: 20, SmallBottlesSmallBox: []int{2, 3, 4}, SmallBottlesLargeBox: []int{8, 10}, MediumBottlesPerBox: []int{2, 3, 4, 5}},
			{SpecID: "2500-3000", SmallBottleCount: 8, MediumBottleCount: 20, SmallBottlesSmallBox: []int{2, 3, 4}, SmallBottlesLargeBox: []int{8, 10}, MediumBottlesPerBox: []int{2, 3, 4, 5}},
		},
	}
}
