package domain

// SymbolID identifies a reel symbol
type SymbolID string

const (
	SymbolCherry  SymbolID = "cherry"
	SymbolLemon   SymbolID = "lemon"
	SymbolClover  SymbolID = "clover"
	SymbolBell    SymbolID = "bell"
	SymbolDiamond SymbolID = "diamond"
	SymbolCoin    SymbolID = "coin"
	SymbolSeven   SymbolID = "seven"
	SymbolSkull   SymbolID = "skull" // the curse symbol, value -1
	SymbolWild    SymbolID = "wild"  // never drawn, only injected
)

// Symbol is a single reel symbol definition.
// Value > 0 is a payout multiplier base; Value == -1 marks the curse symbol.
// Probability is the base draw weight; the wild symbol carries 0 and is only
// ever injected after generation.
type Symbol struct {
	ID          SymbolID `json:"id"`
	Icon        string   `json:"icon"`
	Probability float64  `json:"probability"`
	Value       int      `json:"value"`
}

// GridSize is the number of cells in a spin grid: 5 columns x 3 rows,
// row-major (0-4 top, 5-9 middle, 10-14 bottom).
const (
	GridColumns = 5
	GridRows    = 3
	GridSize    = GridColumns * GridRows
)

// Grid is one spin's drawn symbols, regenerated wholesale each spin.
type Grid [GridSize]SymbolID

// CountSymbol returns the number of cells holding the given symbol.
func (g Grid) CountSymbol(id SymbolID) int {
	count := 0
	for _, cell := range g {
		if cell == id {
			count++
		}
	}
	return count
}

// Pattern is a static winning cell-pattern. A pattern pays when every one of
// its cells holds the same symbol or a wild. Excludes lists pattern IDs that
// are suppressed when this pattern matches (sub-patterns of a longer line).
type Pattern struct {
	ID         string    `json:"id"`
	Cells      []int     `json:"cells"`
	Multiplier float64   `json:"multiplier"`
	Excludes   []string  `json:"excludes,omitempty"`
	IsJackpot  bool      `json:"is_jackpot"`
}
