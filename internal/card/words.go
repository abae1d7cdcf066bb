package card

// Word maps a spoken or typed word to a code
type Word struct {
	Key  string
	Code string
}

// Ordinal maps an ordinal word to its value
type Ordinal struct {
	Key   string
	Value int
}

// RankWords is the rank vocabulary in lookup order. Numerals come first, so
// "10" wins over a rank word appearing later in the same text.
var RankWords = []Word{
	{"1", "a"}, {"2", "2"}, {"3", "3"}, {"4", "4"}, {"5", "5"},
	{"6", "6"}, {"7", "7"}, {"8", "8"}, {"9", "9"}, {"10", "10"},
	{"ace", "a"}, {"a", "a"},
	{"two", "2"},
	{"three", "3"},
	{"four", "4"},
	{"five", "5"},
	{"six", "6"},
	{"seven", "7"},
	{"eight", "8"},
	{"nine", "9"},
	{"ten", "10"},
	{"jack", "j"}, {"j", "j"},
	{"queen", "q"}, {"q", "q"},
	{"king", "k"}, {"k", "k"},
}

// SuitWords is the suit vocabulary in lookup order
var SuitWords = []Word{
	{"spades", "s"}, {"spade", "s"}, {"s", "s"},
	{"hearts", "h"}, {"heart", "h"}, {"h", "h"},
	{"diamonds", "d"}, {"diamond", "d"}, {"d", "d"},
	{"clubs", "c"}, {"club", "c"}, {"c", "c"},
}

// OrdinalWords is the ordinal vocabulary in lookup order
var OrdinalWords = []Ordinal{
	{"first", 1}, {"1st", 1},
	{"second", 2}, {"2nd", 2},
	{"third", 3}, {"3rd", 3},
	{"fourth", 4}, {"4th", 4},
	{"fifth", 5}, {"5th", 5},
	{"sixth", 6}, {"6th", 6},
	{"seventh", 7}, {"7th", 7},
	{"eighth", 8}, {"8th", 8},
	{"ninth", 9}, {"9th", 9},
	{"tenth", 10}, {"10th", 10},
	{"eleventh", 11}, {"11th", 11},
	{"twelfth", 12}, {"12th", 12},
	{"thirteenth", 13}, {"13th", 13},
}

var (
	rankIndex = index(RankWords)
	suitIndex = index(SuitWords)
)

func index(words []Word) map[string]string {
	m := make(map[string]string, len(words))
	for _, w := range words {
		m[w.Key] = w.Code
	}
	return m
}

// LookupRank returns the rank code for an exact vocabulary key
func LookupRank(key string) (string, bool) {
	code, ok := rankIndex[key]
	return code, ok
}

// LookupSuit returns the suit code for an exact vocabulary key
func LookupSuit(key string) (string, bool) {
	code, ok := suitIndex[key]
	return code, ok
}
