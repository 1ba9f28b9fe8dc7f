package routes

import (
	"fmt"
	"sync"
)

// seedRoutes is the compiled-in table of road distances between Brazilian cities.
//
//nolint:gochecknoglobals // Read-only reference data.
var seedRoutes = []Route{
	// Capitals.
	{Origin: "São Paulo, SP", Destination: "Rio de Janeiro, RJ", DistanceKm: 430},
	{Origin: "São Paulo, SP", Destination: "Brasília, DF", DistanceKm: 1015},
	{Origin: "Rio de Janeiro, RJ", Destination: "Brasília, DF", DistanceKm: 1148},
	{Origin: "São Paulo, SP", Destination: "Belo Horizonte, MG", DistanceKm: 586},
	{Origin: "São Paulo, SP", Destination: "Salvador, BA", DistanceKm: 1961},
	{Origin: "São Paulo, SP", Destination: "Recife, PE", DistanceKm: 2527},
	{Origin: "Rio de Janeiro, RJ", Destination: "Belo Horizonte, MG", DistanceKm: 715},
	{Origin: "Brasília, DF", Destination: "Belo Horizonte, MG", DistanceKm: 716},
	{Origin: "Salvador, BA", Destination: "Recife, PE", DistanceKm: 840},
	{Origin: "Recife, PE", Destination: "Fortaleza, CE", DistanceKm: 792},

	// Main regional routes.
	{Origin: "São Paulo, SP", Destination: "Campinas, SP", DistanceKm: 95},
	{Origin: "São Paulo, SP", Destination: "Santos, SP", DistanceKm: 72},
	{Origin: "Rio de Janeiro, RJ", Destination: "Niterói, RJ", DistanceKm: 13},
	{Origin: "Rio de Janeiro, RJ", Destination: "Búzios, RJ", DistanceKm: 167},
	{Origin: "Belo Horizonte, MG", Destination: "Ouro Preto, MG", DistanceKm: 100},
	{Origin: "Belo Horizonte, MG", Destination: "Araxá, MG", DistanceKm: 368},
	{Origin: "São Paulo, SP", Destination: "Sorocaba, SP", DistanceKm: 108},
	{Origin: "São Paulo, SP", Destination: "Ribeirão Preto, SP", DistanceKm: 315},
	{Origin: "Curitiba, PR", Destination: "São Paulo, SP", DistanceKm: 408},
	{Origin: "Curitiba, PR", Destination: "Porto Alegre, RS", DistanceKm: 1134},

	// North-east.
	{Origin: "Salvador, BA", Destination: "Feira de Santana, BA", DistanceKm: 115},
	{Origin: "Recife, PE", Destination: "Olinda, PE", DistanceKm: 8},
	{Origin: "Fortaleza, CE", Destination: "Sobral, CE", DistanceKm: 239},
	{Origin: "São Luís, MA", Destination: "Imperatriz, MA", DistanceKm: 628},

	// North.
	{Origin: "Manaus, AM", Destination: "Belém, PA", DistanceKm: 1619},
	{Origin: "Belém, PA", Destination: "Marabá, PA", DistanceKm: 485},

	// South.
	{Origin: "Porto Alegre, RS", Destination: "Pelotas, RS", DistanceKm: 264},
	{Origin: "Curitiba, PR", Destination: "Londrina, PR", DistanceKm: 365},
	{Origin: "Florianópolis, SC", Destination: "Blumenau, SC", DistanceKm: 331},
	{Origin: "Brasília, DF", Destination: "Goiânia, GO", DistanceKm: 209},

	// Centre-west.
	{Origin: "Cuiabá, MT", Destination: "Várzea Grande, MT", DistanceKm: 30},
	{Origin: "Campo Grande, MS", Destination: "Dourados, MS", DistanceKm: 225},

	// Interstate.
	{Origin: "Campinas, SP", Destination: "Ribeirão Preto, SP", DistanceKm: 220},
	{Origin: "Belo Horizonte, MG", Destination: "Governador Valadares, MG", DistanceKm: 380},
	{Origin: "Salvador, BA", Destination: "Ilhéus, BA", DistanceKm: 463},
	{Origin: "São Paulo, SP", Destination: "Ubatuba, SP", DistanceKm: 192},
	{Origin: "Rio de Janeiro, RJ", Destination: "Angra dos Reis, RJ", DistanceKm: 155},
	{Origin: "Fortaleza, CE", Destination: "Crato, CE", DistanceKm: 532},
}

//nolint:gochecknoglobals // Built once, shared read-only.
var (
	defaultIndex     *Index
	defaultIndexOnce sync.Once
)

// SeedRoutes returns a copy of the compiled-in route table.
func SeedRoutes() []Route {
	out := make([]Route, len(seedRoutes))
	copy(out, seedRoutes)
	return out
}

// Default returns the process-wide index over the compiled-in routes.
func Default() *Index {
	defaultIndexOnce.Do(func() {
		idx, err := NewIndex(seedRoutes)
		if err != nil {
			panic(fmt.Sprintf("routes: compiled-in table is invalid: %v", err))
		}
		defaultIndex = idx
	})
	return defaultIndex
}
