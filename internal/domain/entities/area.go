package entities

import "fmt"

// Area representa uma das áreas de serviço avaliadas em toda pesquisa
type Area string

const (
	AreaAtendimento     Area = "Atendimento"
	AreaGestaoDeTrafego Area = "Gestão de Tráfego"
	AreaDesign          Area = "Design"
	AreaCopywriting     Area = "Copywriting"
	AreaTecnologia      Area = "Tecnologia"
	AreaVendas          Area = "Vendas"
)

// Areas é a lista fechada de áreas, na ordem apresentada ao cliente
var Areas = []Area{
	AreaAtendimento,
	AreaGestaoDeTrafego,
	AreaDesign,
	AreaCopywriting,
	AreaTecnologia,
	AreaVendas,
}

// ParseArea converte o nome recebido do cliente em uma Area conhecida
func ParseArea(name string) (Area, error) {
	for _, a := range Areas {
		if string(a) == name {
			return a, nil
		}
	}
	return "", fmt.Errorf("área desconhecida: %q", name)
}

// Valid indica se a área pertence à lista fixa
func (a Area) Valid() bool {
	_, err := ParseArea(string(a))
	return err == nil
}

func (a Area) String() string { return string(a) }

const (
	MinScore = 1
	MaxScore = 5
)

// Score é a nota de uma área: aplicável (1..5) ou "não se aplica".
// O zero value é uma nota aplicável ainda não escolhida (valor 0).
type Score struct {
	value         int
	notApplicable bool
}

// Applicable cria uma nota aplicável
func Applicable(value int) Score { return Score{value: value} }

// NotApplicable cria a marcação "não se aplica"
func NotApplicable() Score { return Score{notApplicable: true} }

// IsApplicable indica se a área foi avaliada com nota
func (s Score) IsApplicable() bool { return !s.notApplicable }

// Value retorna a nota armazenada; "não se aplica" é persistido como 0
func (s Score) Value() int {
	if s.notApplicable {
		return 0
	}
	return s.value
}

// ScoreFromStorage reconstrói a nota a partir das colunas (nota, nao_se_aplica)
func ScoreFromStorage(nota int, naoSeAplica bool) Score {
	if naoSeAplica {
		return NotApplicable()
	}
	return Applicable(nota)
}
