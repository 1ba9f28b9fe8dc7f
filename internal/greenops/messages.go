package greenops

import (
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// ptBR holds the Brazilian Portuguese rendering of every user-facing string.
// Keys are the English text; English output falls back to the key itself.
//
//nolint:gochecknoglobals // Static translation table.
var ptBR = map[string]string{
	// Equivalencies.
	"Equivalent to driving ~%s km or charging ~%s smartphones": "Equivale a dirigir ~%s km ou carregar ~%s smartphones",
	"(≈ %s km, %s phones)":                                     "(≈ %s km, %s celulares)",
	"km driven":                                                "km dirigidos",
	"smartphones charged":                                      "smartphones carregados",
	"tree seedlings grown for 10 years":                        "mudas de árvore cultivadas por 10 anos",
	"days of home electricity":                                 "dias de energia residencial",
	"~%s million":                                              "~%s milhões",
	"~%s billion":                                              "~%s bilhões",

	// Transport modes.
	"Bicycle": "Bicicleta",
	"Car":     "Carro",
	"Bus":     "Ônibus",
	"Truck":   "Caminhão",

	// Results card.
	"No results to display.":    "Nenhum resultado para exibir.",
	"Trip results":              "Resultados da viagem",
	"Route":                     "Rota",
	"Distance":                  "Distância",
	"CO₂ emission":              "Emissão de CO₂",
	"Transport mode":            "Modo de transporte",
	"Savings vs %s":             "Economia vs %s",
	"%s kg saved":               "%s kg economizados",
	"%s%% less emission":        "%s%% menos emissão",
	"%s kg more than %s":        "%s kg a mais que %s",
	"Distance entered manually": "Distância informada manualmente",

	// Comparison card.
	"Mode comparison": "Comparação entre modos",
	"✓ Selected":      "✓ Selecionado",
	"%s%% vs %s":      "%s%% vs %s",
	"💡 Tip: cycling is the most sustainable option! Bus and bicycle emit less than a car.": "💡 Dica: a bicicleta é a opção mais sustentável! Ônibus e bicicleta produzem menos emissões que carro.",

	// Credits card.
	"Carbon credits":           "Créditos de carbono",
	"Credits needed":           "Créditos necessários",
	"1 credit = %s kg CO₂":     "1 crédito = %s kg CO₂",
	"Estimated price":          "Preço estimado",
	"What are carbon credits?": "O que são créditos de carbono?",
	"A carbon credit represents the reduction or removal of %s kg of CO₂ from the atmosphere. Credits can be bought to offset your emissions and fund environmental projects.": "Um crédito de carbono representa a redução ou remoção de %s kg de CO₂ da atmosfera. Eles podem ser comprados para compensar suas emissões e apoiar projetos ambientais.",

	// Interactive view.
	"Emission (kg CO₂)": "Emissão (kg CO₂)",
	"Mode":              "Modo",
	"↑/↓ move • enter select • q quit": "↑/↓ mover • enter selecionar • q sair",
}

//nolint:gochecknoglobals // Built once and shared by every Formatter.
var messageCatalog = sync.OnceValue(func() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range ptBR {
		// SetString only fails on malformed tags.
		_ = b.SetString(language.BrazilianPortuguese, key, msg)
	}
	return b
})
