package lossy

// KBModesProba holds the 9 tree probabilities for decoding a 4x4 intra mode
// given the already-known mode of the block above (first index) and to the
// left (second index); RFC 6386 Sec. 11.5 kf_bmode_prob.
var KBModesProba = [10][10][9]uint8{
	{ // top=0
		{191, 56, 34, 217, 98, 90, 85, 63, 216},
		{54, 201, 217, 167, 50, 179, 136, 36, 35},
		{51, 83, 87, 157, 182, 34, 171, 78, 211},
		{194, 207, 167, 135, 84, 142, 178, 99, 29},
		{222, 68, 206, 136, 115, 99, 67, 83, 223},
		{114, 54, 51, 125, 52, 119, 116, 182, 95},
		{39, 214, 145, 165, 59, 124, 48, 169, 103},
		{188, 186, 120, 175, 77, 208, 45, 39, 197},
		{86, 225, 102, 48, 87, 53, 125, 99, 144},
		{190, 121, 69, 122, 118, 81, 199, 96, 207},
	},
	{ // top=1
		{202, 193, 46, 183, 190, 71, 164, 214, 90},
		{69, 146, 125, 97, 191, 204, 170, 84, 203},
		{111, 224, 226, 42, 86, 36, 108, 130, 96},
		{44, 82, 173, 211, 108, 82, 195, 155, 129},
		{192, 145, 64, 95, 63, 91, 218, 171, 165},
		{95, 219, 177, 137, 177, 130, 120, 84, 63},
		{158, 154, 51, 221, 40, 56, 67, 188, 68},
		{202, 136, 180, 44, 126, 125, 180, 147, 163},
		{92, 169, 30, 202, 212, 57, 202, 165, 220},
		{96, 224, 192, 115, 56, 103, 139, 68, 144},
	},
	{ // top=2
		{28, 212, 212, 95, 156, 223, 73, 157, 55},
		{188, 104, 191, 157, 183, 78, 67, 123, 223},
		{69, 166, 227, 163, 28, 181, 110, 153, 32},
		{56, 120, 106, 89, 42, 89, 173, 48, 49},
		{215, 152, 45, 222, 164, 224, 60, 60, 196},
		{149, 168, 70, 95, 163, 183, 136, 82, 166},
		{221, 214, 204, 79, 210, 107, 130, 199, 194},
		{123, 140, 160, 143, 58, 91, 85, 44, 114},
		{33, 178, 169, 86, 178, 84, 29, 46, 209},
		{189, 43, 86, 45, 36, 112, 46, 159, 88},
	},
	{ // top=3
		{99, 199, 152, 82, 166, 61, 213, 174, 175},
		{149, 90, 228, 149, 132, 76, 52, 52, 196},
		{138, 118, 136, 133, 147, 214, 41, 200, 195},
		{193, 53, 43, 131, 214, 114, 55, 91, 77},
		{76, 165, 142, 63, 136, 74, 99, 146, 91},
		{47, 141, 168, 53, 40, 194, 166, 31, 51},
		{220, 88, 70, 132, 152, 151, 82, 130, 43},
		{70, 125, 28, 127, 95, 228, 228, 144, 101},
		{136, 206, 215, 228, 170, 197, 211, 152, 67},
		{76, 103, 83, 42, 176, 216, 166, 43, 219},
	},
	{ // top=4
		{108, 42, 40, 177, 150, 156, 163, 68, 42},
		{158, 48, 75, 45, 180, 45, 200, 88, 131},
		{58, 173, 91, 176, 180, 38, 186, 48, 135},
		{196, 177, 172, 161, 108, 94, 80, 199, 211},
		{108, 89, 95, 129, 61, 199, 193, 104, 145},
		{108, 220, 46, 30, 145, 187, 172, 53, 46},
		{165, 82, 157, 95, 61, 117, 45, 90, 122},
		{100, 68, 140, 167, 208, 105, 184, 195, 163},
		{30, 198, 169, 104, 197, 54, 62, 95, 57},
		{55, 218, 169, 67, 97, 100, 182, 81, 211},
	},
	{ // top=5
		{115, 80, 203, 190, 95, 157, 153, 92, 41},
		{51, 190, 136, 98, 39, 28, 113, 225, 61},
		{191, 95, 69, 217, 141, 169, 208, 137, 171},
		{30, 56, 47, 204, 66, 167, 37, 122, 177},
		{169, 65, 138, 60, 38, 106, 121, 38, 119},
		{81, 202, 91, 198, 54, 118, 227, 171, 132},
		{186, 219, 67, 88, 69, 73, 133, 34, 73},
		{216, 113, 228, 133, 199, 216, 91, 96, 68},
		{207, 55, 125, 37, 148, 84, 79, 145, 117},
		{106, 86, 85, 34, 196, 77, 130, 112, 99},
	},
	{ // top=6
		{45, 225, 99, 117, 192, 158, 130, 201, 165},
		{112, 35, 57, 94, 73, 176, 95, 37, 55},
		{180, 139, 116, 214, 108, 139, 183, 158, 57},
		{126, 175, 76, 93, 39, 209, 139, 28, 161},
		{165, 203, 212, 217, 216, 199, 78, 121, 138},
		{45, 198, 112, 187, 108, 197, 59, 212, 104},
		{157, 107, 198, 132, 111, 131, 206, 103, 169},
		{60, 77, 135, 198, 125, 201, 219, 72, 185},
		{173, 105, 131, 168, 28, 105, 101, 81, 138},
		{176, 183, 195, 110, 147, 141, 141, 200, 82},
	},
	{ // top=7
		{158, 149, 216, 71, 196, 49, 100, 159, 197},
		{190, 186, 113, 51, 220, 88, 200, 107, 85},
		{78, 65, 34, 39, 90, 149, 184, 224, 46},
		{144, 134, 189, 175, 77, 211, 206, 126, 154},
		{130, 90, 65, 195, 204, 29, 220, 225, 55},
		{227, 136, 84, 73, 206, 160, 146, 40, 170},
		{91, 59, 144, 62, 146, 198, 163, 171, 180},
		{109, 221, 141, 184, 212, 157, 137, 168, 142},
		{68, 218, 149, 143, 94, 220, 91, 191, 98},
		{224, 227, 161, 152, 188, 89, 98, 140, 47},
	},
	{ // top=8
		{210, 101, 88, 97, 113, 109, 166, 48, 63},
		{66, 87, 126, 205, 67, 208, 82, 44, 134},
		{132, 112, 166, 147, 134, 43, 80, 135, 127},
		{225, 177, 206, 33, 223, 175, 125, 150, 29},
		{118, 104, 220, 127, 135, 165, 219, 216, 167},
		{182, 84, 152, 84, 97, 139, 152, 35, 127},
		{114, 199, 201, 131, 213, 70, 147, 60, 187},
		{164, 34, 128, 179, 172, 197, 34, 49, 192},
		{137, 62, 146, 74, 40, 94, 125, 111, 82},
		{144, 111, 114, 222, 125, 99, 220, 135, 92},
	},
	{ // top=9
		{48, 148, 32, 219, 166, 41, 117, 85, 194},
		{45, 227, 194, 38, 221, 35, 91, 79, 33},
		{187, 67, 89, 60, 149, 199, 57, 172, 83},
		{147, 207, 93, 224, 122, 70, 183, 183, 219},
		{211, 57, 227, 69, 107, 55, 176, 34, 107},
		{175, 201, 124, 129, 211, 78, 47, 179, 204},
		{188, 90, 54, 206, 225, 105, 203, 181, 58},
		{172, 228, 38, 116, 164, 137, 197, 122, 45},
		{157, 193, 115, 31, 135, 153, 55, 138, 120},
		{190, 145, 209, 67, 139, 73, 215, 161, 194},
	},
}
