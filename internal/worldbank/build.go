package worldbank

import "github.com/lumipallolabs/weightmap/internal/model"

// WorldLabel is the fixed label of the population tree's root
const WorldLabel = "World"

// BuildTree assembles the three-level population tree: a "World" root,
// one node per region, one leaf per country weighted by its population.
// Countries without a population entry still appear, as zero-weight
// leaves; they take no space in a layout but stay in the tree.
func BuildTree(regions []Region, populations map[string]int64) *model.Tree {
	regionTrees := make([]*model.Tree, 0, len(regions))
	for _, region := range regions {
		countries := make([]*model.Tree, 0, len(region.Countries))
		for _, name := range region.Countries {
			countries = append(countries, model.New(model.Population, name, nil, populations[name]))
		}
		regionTrees = append(regionTrees, model.New(model.Population, region.Name, countries, 0))
	}
	return model.New(model.Population, WorldLabel, regionTrees, 0)
}
