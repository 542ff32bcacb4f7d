package palette

// table holds the wplace palette in site order: free and paid colors
// interleaved, darkest to lightest within each hue family. Each pattern is
// a 5x5 texture unique within the table.
var table = []Entry{
	{Color: RGB(0x00, 0x00, 0x00), Name: "Black", Pattern: "X...X/.X.X./..X../.X.X./X...X"},
	{Color: RGB(0x3c, 0x3c, 0x3c), Name: "Dark Gray", Pattern: "...../XXXXX/.XXX./..X../....."},
	{Color: RGB(0x78, 0x78, 0x78), Name: "Gray", Pattern: "...../XXXXX/...../XXXXX/....."},
	{Color: RGB(0xaa, 0xaa, 0xaa), Name: "Medium Gray", Paid: true, Pattern: ".XX.X/X.XX./...../.XX.X/X.XX."},
	{Color: RGB(0xd2, 0xd2, 0xd2), Name: "Light Gray", Pattern: "...../..X../.X.X./X...X/....."},
	{Color: RGB(0xff, 0xff, 0xff), Name: "White", Pattern: "...../...../..X../...../....."},
	{Color: RGB(0x60, 0x00, 0x18), Name: "Deep Red", Pattern: "..X../...../XXXXX/...../..X.."},
	{Color: RGB(0xa5, 0x0e, 0x1e), Name: "Dark Red", Paid: true, Pattern: "XXX../X.X../XXXXX/..X.X/..XXX"},
	{Color: RGB(0xed, 0x1c, 0x24), Name: "Red", Pattern: ".XXX./X...X/X...X/X...X/.XXX."},
	{Color: RGB(0xfa, 0x80, 0x72), Name: "Light Red", Paid: true, Pattern: "...../...X./..XX./.XXX./....."},
	{Color: RGB(0xe4, 0x5c, 0x1a), Name: "Dark Orange", Paid: true, Pattern: "..X../.XXX./XXXXX/.XXX./..X.."},
	{Color: RGB(0xff, 0x7f, 0x27), Name: "Orange", Pattern: "..X../..X../XX.XX/..X../..X.."},
	{Color: RGB(0xf6, 0xaa, 0x09), Name: "Gold", Pattern: "...../.XXX./.X.X./.XXX./....."},
	{Color: RGB(0xf9, 0xdd, 0x3b), Name: "Yellow", Pattern: "..X../..X../X.X.X/.XXX./..X.."},
	{Color: RGB(0xff, 0xfa, 0xbc), Name: "Light Yellow", Pattern: "..X../.X.X./X...X/.X.X./..X.."},
	{Color: RGB(0x9c, 0x84, 0x31), Name: "Dark Goldenrod", Paid: true, Pattern: ".XXX./X...X/.XXX./X...X/.XXX."},
	{Color: RGB(0xc5, 0xad, 0x31), Name: "Goldenrod", Paid: true, Pattern: "..X../.X.X./.X.X./.X.X./..X.."},
	{Color: RGB(0xe8, 0xd4, 0x5f), Name: "Light Goldenrod", Paid: true, Pattern: "...XX/...XX/...../XX.../XX..."},
	{Color: RGB(0x4a, 0x6b, 0x3a), Name: "Dark Olive", Paid: true, Pattern: "...../.XXX./.XX../.X.../....."},
	{Color: RGB(0x5a, 0x94, 0x4a), Name: "Olive", Paid: true, Pattern: "X...X/.X.X./..X../..X../..X.."},
	{Color: RGB(0x84, 0xc5, 0x73), Name: "Light Olive", Paid: true, Pattern: "XXXXX/X...X/X...X/X...X/XXXXX"},
	{Color: RGB(0x0e, 0xb9, 0x68), Name: "Dark Green", Pattern: "..X../.XXX./X.X.X/..X../..X.."},
	{Color: RGB(0x13, 0xe6, 0x7b), Name: "Green", Pattern: ".X.../.XX../.XXX./.XX../.X..."},
	{Color: RGB(0x87, 0xff, 0x5e), Name: "Light Green", Pattern: "...../X...X/.X.X./..X../....."},
	{Color: RGB(0x0c, 0x81, 0x6e), Name: "Dark Teal", Pattern: "....X/...X./..X../.X.../X...."},
	{Color: RGB(0x10, 0xae, 0xa6), Name: "Teal", Pattern: "..X../..X../XXXXX/..X../..X.."},
	{Color: RGB(0x13, 0xe1, 0xbe), Name: "Light Teal", Pattern: "X...X/...X./..X../.X.../X...X"},
	{Color: RGB(0x0f, 0x79, 0x9f), Name: "Dark Cyan", Paid: true, Pattern: "...../.XXX./..XX./...X./....."},
	{Color: RGB(0x60, 0xf7, 0xf2), Name: "Cyan", Pattern: "...X./..X../.X.../..X../...X."},
	{Color: RGB(0xbb, 0xfa, 0xf2), Name: "Light Cyan", Paid: true, Pattern: "X...X/XX.XX/XXXXX/XX.XX/X...X"},
	{Color: RGB(0x28, 0x50, 0x9e), Name: "Dark Blue", Pattern: "..X../...X./XXXXX/...X./..X.."},
	{Color: RGB(0x40, 0x93, 0xe4), Name: "Blue", Pattern: "...../..X../.XXX./XXXXX/....."},
	{Color: RGB(0x7d, 0xc7, 0xff), Name: "Light Blue", Paid: true, Pattern: "X...X/...../...../...../X...X"},
	{Color: RGB(0x4d, 0x31, 0xb8), Name: "Dark Indigo", Paid: true, Pattern: "....X/...X./..X../.X.X./X...X"},
	{Color: RGB(0x6b, 0x50, 0xf6), Name: "Indigo", Pattern: "X..../.X.../..X../...X./....X"},
	{Color: RGB(0x99, 0xb1, 0xfb), Name: "Light Indigo", Pattern: "..X../..X../..X../..X../..X.."},
	{Color: RGB(0x4a, 0x42, 0x84), Name: "Dark Slate Blue", Paid: true, Pattern: "...../..X../...../..X../....."},
	{Color: RGB(0x7a, 0x71, 0xc4), Name: "Slate Blue", Paid: true, Pattern: ".X.X./X.X.X/X...X/.X.X./..X.."},
	{Color: RGB(0xb5, 0xae, 0xf1), Name: "Light Slate Blue", Paid: true, Pattern: ".XXX./X..XX/X.X.X/XX..X/.XXX."},
	{Color: RGB(0x78, 0x0c, 0x99), Name: "Dark Purple", Pattern: "..X../..X../..X../...../..X.."},
	{Color: RGB(0xaa, 0x38, 0xb9), Name: "Purple", Pattern: "...X./..XX./.XXX./..XX./...X."},
	{Color: RGB(0xe0, 0x9f, 0xf9), Name: "Light Purple", Pattern: "...../.XXX./X...X/.XXX./....."},
	{Color: RGB(0xcb, 0x00, 0x7a), Name: "Dark Pink", Pattern: "...../...../XXXXX/...../....."},
	{Color: RGB(0xec, 0x1f, 0x80), Name: "Pink", Pattern: ".X.X./.X.X./.X.X./.X.X./.X.X."},
	{Color: RGB(0xf3, 0x8d, 0xa9), Name: "Light Pink", Pattern: "...../..X../.XXX./..X../....."},
	{Color: RGB(0x9b, 0x52, 0x49), Name: "Dark Peach", Paid: true, Pattern: ".XXX./XX..X/X.X.X/X..XX/.XXX."},
	{Color: RGB(0xd1, 0x80, 0x78), Name: "Peach", Paid: true, Pattern: ".X.X./XXXXX/XXXXX/.XXX./..X.."},
	{Color: RGB(0xfa, 0xb6, 0xa4), Name: "Light Peach", Paid: true, Pattern: ".X.X./.X.X./.X.X./...../.X.X."},
	{Color: RGB(0x68, 0x46, 0x34), Name: "Dark Brown", Pattern: "XX.../XX.../...../...XX/...XX"},
	{Color: RGB(0x95, 0x68, 0x2a), Name: "Brown", Pattern: ".XXX./X...X/X.X.X/X...X/.XXX."},
	{Color: RGB(0xdb, 0xa4, 0x63), Name: "Light Brown", Paid: true, Pattern: "...../...../.X.X./...../....."},
	{Color: RGB(0x7b, 0x63, 0x52), Name: "Dark Tan", Paid: true, Pattern: "...../.X.../.XX../.XXX./....."},
	{Color: RGB(0x9c, 0x84, 0x6b), Name: "Tan", Paid: true, Pattern: ".XXX./X...X/..XX./...../..X.."},
	{Color: RGB(0xd6, 0xb5, 0x94), Name: "Light Tan", Paid: true, Pattern: "...../XXXXX/.X.X./.X.X./....."},
	{Color: RGB(0xd1, 0x80, 0x51), Name: "Dark Beige", Paid: true, Pattern: "...../..X../.X.X./..X../....."},
	{Color: RGB(0xf8, 0xb2, 0x77), Name: "Beige", Pattern: "..XXX/..X.X/XXXXX/X.X../XXX.."},
	{Color: RGB(0xff, 0xc5, 0xa5), Name: "Light Beige", Paid: true, Pattern: "XXXXX/X...X/X.X.X/X...X/XXXXX"},
	{Color: RGB(0x6d, 0x64, 0x3f), Name: "Dark Stone", Paid: true, Pattern: "XXXXX/.X.X./..X../.X.X./XXXXX"},
	{Color: RGB(0x94, 0x8c, 0x6b), Name: "Stone", Paid: true, Pattern: "..X../.X.../XXXXX/.X.../..X.."},
	{Color: RGB(0xcd, 0xc5, 0x9e), Name: "Light Stone", Paid: true, Pattern: ".X.../..X../...X./..X../.X..."},
	{Color: RGB(0x33, 0x39, 0x41), Name: "Dark Slate", Paid: true, Pattern: "XXXXX/.X.../..X../.X.../XXXXX"},
	{Color: RGB(0x6d, 0x75, 0x8d), Name: "Slate", Paid: true, Pattern: "XXXXX/.XXX./..X../.XXX./XXXXX"},
	{Color: RGB(0xb3, 0xb9, 0xd1), Name: "Light Slate", Paid: true, Pattern: "X...X/...../..X../...../X...X"},
}
