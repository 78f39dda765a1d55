package adreno

// Static classification tables. Data only: extending support for a new
// hardware revision means adding entries here, never touching Decode.

const defaultModelName = "Adreno GPU"

// generationNames keys the coarse version family by major alone
var generationNames = map[uint8]string{
	1: "100",
	2: "200",
	3: "300",
	4: "400",
	5: "500",
	6: "600",
	7: "700",
	8: "800",
	9: "900",
}

type modelKey struct {
	major uint8
	minor uint8
}

type model struct {
	name     string
	platform string
}

// models keys the specific part and its typical SoC family by the exact
// (major, minor) pair
var models = map[modelKey]model{
	{6, 0}: {name: "Adreno 600"},
	{6, 1}: {name: "Adreno 610", platform: "Snapdragon 665/680/685/690/6 Gen 1"},
	{6, 2}: {name: "Adreno 620", platform: "Snapdragon 730/732G"},
	{6, 3}: {name: "Adreno 630", platform: "Snapdragon 835/845"},
	{6, 4}: {name: "Adreno 640", platform: "Snapdragon 855"},
	{6, 5}: {name: "Adreno 650", platform: "Snapdragon 865/870"},
	{6, 6}: {name: "Adreno 660", platform: "Snapdragon 888"},
	{6, 8}: {name: "Adreno 680", platform: "Snapdragon 8 Gen 1"},
	{6, 9}: {name: "Adreno 690", platform: "Snapdragon 7+ Gen 2"},
	{7, 0}: {name: "Adreno 700"},
	{7, 1}: {name: "Adreno 710"},
	{7, 2}: {name: "Adreno 720", platform: "Snapdragon 7 Gen 1"},
	{7, 3}: {name: "Adreno 730", platform: "Snapdragon 8+ Gen 1"},
	{7, 4}: {name: "Adreno 740"},
	{7, 5}: {name: "Adreno 750", platform: "Snapdragon 8 Gen 2"},
}
