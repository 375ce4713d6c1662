package topology

// Group sizes of the first round per division size. Four to six teams race
// as one group on the whole-division grid.
var initialSizes = map[int][]int{
	4:  {4},
	5:  {5},
	6:  {6},
	7:  {4, 3},
	8:  {4, 4},
	9:  {3, 3, 3},
	10: {4, 3, 3},
	11: {4, 4, 3},
	12: {3, 3, 3, 3},
	13: {4, 3, 3, 3},
	14: {4, 4, 3, 3},
	15: {4, 4, 4, 3},
	16: {4, 4, 4, 4},
	17: {3, 3, 3, 3, 3, 2},
	18: {3, 3, 3, 3, 3, 3},
	19: {4, 3, 3, 3, 3, 3},
	20: {4, 4, 3, 3, 3, 3},
	21: {3, 3, 3, 3, 3, 2, 2, 2},
	22: {3, 3, 3, 3, 3, 3, 2, 2},
	23: {3, 3, 3, 3, 3, 3, 3, 2},
	24: {3, 3, 3, 3, 3, 3, 3, 3},
	25: {4, 3, 3, 3, 3, 3, 3, 3},
	26: {4, 4, 3, 3, 3, 3, 3, 3},
	27: {4, 4, 4, 3, 3, 3, 3, 3},
	28: {4, 4, 4, 4, 3, 3, 3, 3},
	29: {4, 4, 4, 4, 4, 3, 3, 3},
	30: {4, 4, 4, 4, 4, 4, 3, 3},
	31: {4, 4, 4, 4, 4, 4, 4, 3},
	32: {4, 4, 4, 4, 4, 4, 4, 4},
}

// Initial group names by group count. Serpentine seeding fills groups in
// this order, so top seeds are spread across the lettered pairs.
var initialNames = map[int][]string{
	1: {"A"},
	2: {"A", "B"},
	3: {"A", "B", "C"},
	4: {"A", "B", "C", "D"},
	6: {"A", "D", "B", "E", "C", "F"},
	8: {"A", "E", "B", "F", "C", "G", "D", "H"},
}

var knockoutNames = []string{
	"1st/2nd", "3rd/4th", "5th/6th", "7th/8th", "9th/10th",
	"11th/12th", "13th/14th", "15th/16th", "17th/18th", "19th/20th",
}

const (
	sixGroupHead   = "1A 1B 1C|1D 1E 1F|2A 2B 2C|2D 2E 2F"
	eightGroupHead = "1A 1B 1C 1D|1E 1F 1G 1H|2A 2B 2C 2D|2E 2F 2G 2H"
	eightGroupFull = eightGroupHead + "|3A 3B 3C 3D|3E 3F 3G 3H"
)

// Seats of the intermediate round, groups separated by "|". Divisions of
// six or fewer go straight from the first round to the knockouts.
var intermediateSeats = map[int]string{
	7:  "1A 1B 2A 2B|3A 3B 4A",
	8:  "1A 1B 2A 2B|3A 3B 4A 4B",
	9:  "1A 2B 1C|2A 1B 2C|3A 3B 3C",
	10: "1A 2B 1C|2A 1B 2C|3A 3B 3C 4A",
	11: "1A 2B 1C 3A|2A 1B 2C 3B|3C 4A 4B",
	12: "1A 2B 1C 2D|2A 1B 2C 1D|3A 3B 3C 3D",
	// 4A sits the intermediate round out.
	13: "1A 2B 1C 2D|2A 1B 2C 1D|3A 3B 3C 3D",
	14: "1A 2B 1C 2D|2A 1B 2C 1D|3A 4B 3C|4A 3B 3D",
	15: "1A 2B 1C 2D|2A 1B 2C 1D|3A 3B 3D|4A 4B 3C 4C",
	16: "1A 2B 1C 2D|2A 1B 2C 1D|3A 3B 3C 3D|4A 4B 4C 4D",
	17: sixGroupHead + "|3A 3B 3C|3D 3E",
	18: sixGroupHead + "|3A 3B 3C|3D 3E 3F",
	19: sixGroupHead + "|4A 3C 3E|3A 3B 3D 3F",
	20: sixGroupHead + "|3B 4A 3C 3E|3A 4D 3D 3F",
	21: eightGroupHead + "|3A 3B 3C|3E 3F",
	22: eightGroupHead + "|3A 3B 3C|3E 3F 3G",
	23: eightGroupHead + "|3A 3B 3C 3D|3E 3F 3G",
	24: eightGroupFull,
	25: eightGroupHead + "|3A 3B 3C 3D|3E 3F 3G|3H 4A",
	26: eightGroupFull + "|4A 4E",
	27: eightGroupFull + "|4A 4B 4E",
	28: eightGroupFull + "|4A 4B 4E 4F",
	29: eightGroupFull + "|4A 4B 4C|4E 4F",
	30: eightGroupFull + "|4A 4B 4C|4E 4F 4G",
	31: eightGroupFull + "|4A 4B 4C 4D|4E 4F 4G",
	32: eightGroupFull + "|4A 4B 4C 4D|4E 4F 4G 4H",
}

const (
	fourGroupFinals  = "11 12|21 22|31 32|41 42"
	eightGroupFinals = fourGroupFinals + "|13 14|23 24|33 34|43 44"
	sixGroupFinals   = "11 12|21 22|31 32|13 14|23 24|33 34|15 16|25 26"
)

// Knockout pairings. Seats with a digit label refer to the intermediate
// round; divisions of six or fewer are seeded from their single first-round
// group.
var knockoutSeats = map[int]string{
	4:  "1A 2A|3A 4A",
	5:  "1A 2A|3A 4A",
	6:  "1A 2A|3A 4A|5A 6A",
	7:  "11 21|31 41",
	8:  "11 21|31 41|12 22|32 42",
	9:  "11 12|21 22|31 32",
	10: "11 12|21 22|31 32",
	11: fourGroupFinals,
	12: fourGroupFinals,
	13: fourGroupFinals,
	14: fourGroupFinals + "|13 14|23 24|33 34",
	15: fourGroupFinals,
	16: fourGroupFinals + "|13 23|33 43",
	17: sixGroupFinals,
	18: sixGroupFinals + "|35 36",
	19: sixGroupFinals + "|35 36",
	20: sixGroupFinals + "|35 36|45 46",
	21: eightGroupFinals + "|15 16|25 26",
	22: eightGroupFinals,
	23: eightGroupFinals,
	24: eightGroupFinals,
	25: eightGroupFinals,
	26: eightGroupFinals,
	27: eightGroupFinals,
	28: eightGroupFinals,
	29: eightGroupFinals,
	30: eightGroupFinals,
	31: eightGroupFinals,
	32: eightGroupFinals,
}
