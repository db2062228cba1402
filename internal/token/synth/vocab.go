package synth

var tokenNames = []string{
	"Brady Red Pill Mr Beast",
	"crazy i just found something crazy",
	"DAKOTA",
	"bundlecoin i just found something crazy",
	"El Jefe El Jefe Pequeno",
	"xAI",
	"Experiment The Mushroom Experiment",
	"GIGA GIGA COIN",
	"Tiberius Tiberius Coin",
	"ZOLANACHAN Zolana-Chan",
	"MrBeast2.0 Brady Penfield",
}

var tokenSymbols = []string{"BRADY", "CRAZY", "DAKOTA", "BUNDLE", "JEFE", "XAI", "SHRM", "GIGA", "TIB", "ZOLA", "BEAST"}

var contractPrefixes = []string{"FrGY", "5D9s", "HAc4", "6co8", "DfaZ", "9byn", "03EH", "5Q3a", "3Jzq", "Cf3H"}

var contractSuffixes = []string{"pump", "yMko", "rB6V", "qwrx"}

// solAmounts are the promotional quick-buy sizes, in SOL.
var solAmounts = []string{"0", "0.037", "0.025", "0.011", "0.5"}

type changeSlot struct {
	timeframe string
	min, max  float64
}

// changeSlots are ordered earliest to latest timeframe.
var changeSlots = []changeSlot{
	{"5m", -50, 50},
	{"1h", -30, 70},
	{"6h", -20, 100},
	{"24h", -10, 150},
	{"", -25, 25},
}

func pick[T any](items []T, index int) T {
	n := len(items)
	return items[((index%n)+n)%n]
}
