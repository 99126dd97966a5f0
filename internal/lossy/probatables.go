package lossy

// CoeffsProba0 holds the default per-(type,band,context) probabilities for
// the 11-node coefficient token tree (RFC 6386 Sec. 13.5 default_coeff_probs
// layout); any entry not overridden by parseProba's update pass uses this
// table.
var CoeffsProba0 = [4][8][3][11]uint8{
	{ // type 0
		{ // band 0
			{128, 161, 154, 164, 155, 153, 177, 165, 196, 210, 209},
			{118, 115, 135, 150, 162, 155, 170, 180, 191, 188, 182},
			{125, 141, 140, 132, 153, 168, 156, 165, 185, 176, 185},
		},
		{ // band 1
			{144, 140, 134, 139, 153, 162, 178, 191, 175, 202, 198},
			{115, 113, 147, 129, 158, 172, 157, 180, 172, 178, 179},
			{130, 122, 143, 128, 125, 133, 160, 162, 182, 169, 175},
		},
		{ // band 2
			{115, 152, 138, 156, 176, 168, 159, 193, 194, 195, 181},
			{125, 142, 126, 142, 155, 153, 164, 163, 162, 172, 196},
			{118, 109, 114, 145, 141, 138, 151, 169, 161, 154, 194},
		},
		{ // band 3
			{117, 120, 151, 162, 137, 172, 183, 187, 193, 206, 205},
			{129, 131, 144, 144, 150, 161, 160, 169, 156, 193, 194},
			{91, 98, 118, 124, 122, 131, 164, 171, 161, 152, 185},
		},
		{ // band 4
			{122, 126, 140, 133, 134, 155, 168, 178, 175, 195, 178},
			{124, 134, 110, 138, 132, 158, 175, 180, 182, 160, 201},
			{94, 119, 124, 128, 150, 138, 162, 169, 168, 153, 170},
		},
		{ // band 5
			{105, 139, 145, 136, 141, 179, 162, 192, 193, 179, 180},
			{124, 103, 115, 149, 134, 133, 145, 172, 160, 178, 197},
			{105, 129, 114, 145, 113, 152, 130, 156, 167, 171, 170},
		},
		{ // band 6
			{134, 119, 138, 134, 133, 145, 177, 184, 159, 198, 177},
			{106, 115, 116, 142, 160, 158, 140, 157, 188, 194, 187},
			{103, 111, 103, 113, 133, 117, 151, 142, 149, 176, 170},
		},
		{ // band 7
			{112, 138, 149, 140, 161, 160, 156, 179, 193, 170, 210},
			{121, 102, 135, 130, 156, 137, 147, 178, 176, 182, 188},
			{91, 106, 94, 125, 124, 150, 154, 160, 149, 159, 176},
		},
	},
	{ // type 1
		{ // band 0
			{126, 134, 151, 151, 145, 162, 190, 184, 176, 193, 221},
			{122, 116, 135, 144, 140, 173, 147, 183, 172, 173, 188},
			{107, 133, 123, 150, 149, 139, 150, 170, 150, 186, 193},
		},
		{ // band 1
			{127, 122, 150, 152, 168, 175, 164, 164, 182, 211, 196},
			{109, 132, 136, 144, 158, 144, 175, 154, 183, 193, 207},
			{102, 135, 142, 144, 124, 148, 149, 157, 180, 191, 180},
		},
		{ // band 2
			{121, 126, 135, 150, 174, 153, 183, 197, 176, 207, 213},
			{118, 141, 143, 133, 157, 142, 177, 169, 187, 197, 185},
			{128, 130, 105, 146, 158, 139, 169, 167, 161, 176, 183},
		},
		{ // band 3
			{129, 121, 128, 159, 165, 151, 157, 184, 193, 190, 188},
			{130, 128, 119, 149, 159, 134, 141, 179, 178, 190, 181},
			{117, 126, 112, 145, 152, 162, 130, 165, 150, 178, 178},
		},
		{ // band 4
			{110, 144, 123, 148, 144, 144, 187, 174, 164, 198, 203},
			{112, 113, 140, 134, 163, 154, 142, 146, 168, 161, 177},
			{120, 100, 124, 113, 154, 136, 130, 135, 142, 152, 175},
		},
		{ // band 5
			{105, 115, 127, 141, 166, 148, 170, 158, 171, 175, 192},
			{119, 107, 138, 147, 153, 156, 139, 181, 151, 161, 191},
			{122, 108, 134, 145, 124, 135, 139, 173, 150, 179, 168},
		},
		{ // band 6
			{128, 118, 125, 157, 142, 141, 160, 185, 161, 182, 209},
			{92, 109, 136, 150, 128, 137, 166, 180, 152, 195, 202},
			{82, 107, 108, 129, 114, 146, 139, 154, 161, 154, 174},
		},
		{ // band 7
			{123, 121, 131, 149, 146, 143, 161, 153, 183, 195, 190},
			{126, 109, 134, 119, 157, 163, 168, 149, 171, 189, 171},
			{83, 112, 106, 129, 142, 141, 129, 145, 172, 143, 153},
		},
	},
	{ // type 2
		{ // band 0
			{124, 155, 140, 153, 147, 156, 172, 182, 197, 184, 219},
			{132, 115, 131, 132, 136, 169, 173, 188, 177, 200, 211},
			{108, 112, 139, 133, 158, 148, 142, 168, 185, 167, 178},
		},
		{ // band 1
			{116, 124, 130, 148, 176, 167, 184, 195, 198, 182, 212},
			{106, 121, 118, 157, 153, 172, 171, 187, 178, 203, 211},
			{132, 116, 109, 118, 144, 155, 135, 144, 169, 180, 189},
		},
		{ // band 2
			{136, 119, 159, 162, 164, 165, 169, 166, 199, 197, 220},
			{136, 127, 151, 132, 168, 141, 159, 179, 179, 200, 186},
			{97, 136, 129, 134, 133, 136, 166, 143, 172, 161, 173},
		},
		{ // band 3
			{125, 117, 129, 166, 173, 176, 158, 180, 166, 183, 182},
			{110, 137, 135, 139, 139, 155, 143, 173, 170, 169, 201},
			{116, 110, 142, 138, 118, 133, 156, 148, 183, 165, 178},
		},
		{ // band 4
			{111, 113, 152, 151, 142, 158, 162, 166, 178, 202, 184},
			{109, 138, 138, 150, 160, 137, 144, 146, 167, 164, 201},
			{125, 132, 121, 147, 154, 126, 157, 148, 155, 167, 181},
		},
		{ // band 5
			{105, 127, 158, 150, 171, 167, 177, 185, 188, 188, 204},
			{94, 128, 137, 155, 141, 137, 154, 182, 151, 173, 199},
			{114, 131, 123, 135, 118, 144, 153, 144, 169, 147, 161},
		},
		{ // band 6
			{114, 142, 117, 124, 168, 162, 157, 180, 160, 201, 203},
			{116, 128, 108, 134, 154, 153, 141, 181, 153, 192, 185},
			{114, 117, 98, 125, 137, 144, 128, 154, 151, 173, 155},
		},
		{ // band 7
			{116, 143, 118, 158, 153, 165, 162, 157, 177, 191, 175},
			{129, 133, 128, 144, 128, 154, 154, 174, 173, 182, 165},
			{85, 119, 113, 132, 132, 140, 158, 164, 149, 144, 179},
		},
	},
	{ // type 3
		{ // band 0
			{118, 144, 130, 175, 159, 150, 162, 193, 201, 213, 221},
			{128, 126, 138, 141, 152, 164, 174, 175, 198, 197, 182},
			{104, 104, 109, 148, 123, 155, 175, 173, 158, 193, 193},
		},
		{ // band 1
			{141, 150, 163, 147, 145, 187, 175, 186, 202, 205, 201},
			{103, 135, 130, 151, 139, 156, 169, 177, 195, 170, 211},
			{120, 139, 123, 138, 133, 141, 172, 181, 180, 173, 180},
		},
		{ // band 2
			{115, 122, 156, 144, 139, 152, 169, 182, 192, 208, 187},
			{124, 118, 143, 139, 130, 146, 169, 184, 185, 182, 208},
			{93, 106, 108, 125, 157, 129, 146, 161, 151, 182, 183},
		},
		{ // band 3
			{136, 151, 157, 134, 159, 149, 171, 187, 199, 172, 192},
			{129, 119, 151, 156, 147, 152, 165, 158, 174, 179, 191},
			{127, 107, 139, 128, 144, 162, 157, 166, 177, 171, 173},
		},
		{ // band 4
			{108, 146, 132, 153, 142, 169, 170, 183, 199, 193, 210},
			{122, 119, 130, 157, 137, 149, 139, 164, 184, 169, 194},
			{124, 111, 131, 116, 114, 140, 149, 155, 180, 162, 190},
		},
		{ // band 5
			{110, 133, 141, 139, 132, 143, 162, 179, 188, 189, 190},
			{117, 107, 141, 124, 159, 167, 154, 160, 189, 195, 176},
			{104, 96, 135, 128, 115, 126, 129, 152, 152, 159, 193},
		},
		{ // band 6
			{137, 118, 128, 127, 162, 154, 154, 165, 176, 176, 185},
			{115, 137, 112, 137, 141, 152, 167, 158, 187, 186, 175},
			{95, 102, 100, 111, 113, 118, 128, 170, 163, 164, 158},
		},
		{ // band 7
			{134, 114, 133, 137, 135, 164, 182, 165, 181, 174, 199},
			{104, 126, 134, 134, 150, 160, 165, 162, 164, 176, 169},
			{105, 96, 118, 124, 127, 146, 157, 154, 138, 153, 182},
		},
	},
}

// CoeffsUpdateProba holds, per table entry, the probability that parseProba's
// update pass replaces the corresponding CoeffsProba0 value with one read
// from the bitstream (RFC 6386 Sec. 13.4 coeff_update_probs layout).
var CoeffsUpdateProba = [4][8][3][11]uint8{
	{ // type 0
		{ // band 0
			{247, 214, 244, 203, 164, 193, 223, 180, 214, 194, 193},
			{226, 221, 184, 233, 190, 210, 160, 227, 210, 253, 219},
			{203, 193, 160, 216, 237, 200, 176, 162, 205, 182, 228},
		},
		{ // band 1
			{228, 179, 183, 191, 241, 239, 198, 196, 233, 210, 173},
			{200, 215, 192, 186, 210, 205, 202, 235, 217, 215, 165},
			{225, 186, 225, 202, 229, 183, 252, 235, 224, 164, 203},
		},
		{ // band 2
			{188, 215, 252, 173, 234, 239, 169, 161, 170, 250, 241},
			{229, 238, 196, 182, 234, 184, 195, 219, 245, 199, 219},
			{172, 230, 183, 186, 160, 175, 191, 226, 195, 252, 198},
		},
		{ // band 3
			{213, 224, 182, 225, 170, 169, 170, 169, 217, 190, 200},
			{170, 166, 177, 163, 185, 216, 238, 214, 169, 177, 249},
			{193, 183, 201, 171, 190, 163, 187, 238, 183, 165, 170},
		},
		{ // band 4
			{215, 201, 194, 238, 211, 212, 241, 241, 189, 182, 190},
			{251, 216, 244, 167, 238, 170, 183, 240, 185, 178, 167},
			{201, 170, 163, 170, 171, 218, 253, 235, 227, 173, 177},
		},
		{ // band 5
			{189, 201, 251, 180, 240, 236, 190, 249, 253, 253, 216},
			{240, 249, 188, 168, 160, 187, 187, 190, 222, 225, 231},
			{220, 169, 165, 201, 189, 174, 244, 224, 171, 163, 243},
		},
		{ // band 6
			{161, 176, 197, 249, 231, 212, 208, 178, 212, 165, 170},
			{236, 196, 241, 195, 175, 182, 198, 221, 208, 206, 211},
			{189, 195, 211, 200, 164, 226, 210, 161, 239, 214, 230},
		},
		{ // band 7
			{176, 198, 232, 179, 220, 243, 166, 199, 230, 162, 242},
			{231, 180, 243, 214, 176, 240, 199, 215, 239, 234, 173},
			{165, 201, 204, 229, 194, 211, 203, 250, 253, 164, 239},
		},
	},
	{ // type 1
		{ // band 0
			{235, 198, 194, 217, 199, 231, 176, 206, 216, 215, 162},
			{248, 175, 193, 200, 187, 236, 197, 207, 236, 193, 170},
			{194, 233, 191, 207, 185, 162, 227, 175, 226, 187, 209},
		},
		{ // band 1
			{206, 253, 252, 225, 238, 242, 174, 194, 181, 243, 177},
			{247, 194, 242, 220, 178, 233, 227, 219, 199, 227, 208},
			{179, 224, 169, 178, 247, 225, 177, 234, 242, 161, 165},
		},
		{ // band 2
			{240, 176, 177, 165, 182, 172, 241, 218, 201, 216, 211},
			{171, 194, 204, 246, 248, 239, 182, 214, 252, 219, 242},
			{242, 227, 204, 231, 252, 223, 189, 234, 185, 243, 195},
		},
		{ // band 3
			{165, 190, 206, 218, 193, 187, 243, 239, 188, 226, 250},
			{214, 236, 164, 230, 219, 201, 241, 216, 223, 238, 250},
			{179, 240, 237, 247, 162, 191, 230, 194, 195, 163, 218},
		},
		{ // band 4
			{192, 189, 169, 184, 227, 205, 190, 212, 196, 235, 217},
			{236, 200, 198, 172, 243, 163, 193, 186, 198, 181, 201},
			{209, 232, 249, 252, 160, 209, 177, 192, 224, 222, 218},
		},
		{ // band 5
			{176, 244, 189, 230, 225, 216, 206, 251, 220, 193, 245},
			{246, 194, 243, 209, 217, 172, 189, 233, 204, 184, 203},
			{234, 186, 184, 217, 193, 254, 196, 163, 198, 160, 190},
		},
		{ // band 6
			{207, 247, 194, 243, 187, 191, 221, 174, 247, 174, 185},
			{176, 212, 240, 164, 190, 175, 252, 238, 180, 231, 239},
			{251, 253, 210, 187, 189, 232, 188, 178, 176, 214, 210},
		},
		{ // band 7
			{214, 160, 182, 220, 177, 228, 165, 245, 231, 245, 190},
			{166, 172, 221, 217, 206, 172, 219, 209, 164, 188, 234},
			{190, 185, 224, 239, 184, 243, 251, 236, 235, 248, 211},
		},
	},
	{ // type 2
		{ // band 0
			{185, 169, 216, 181, 196, 202, 230, 189, 203, 165, 218},
			{224, 205, 207, 185, 216, 228, 181, 248, 201, 249, 203},
			{164, 180, 246, 245, 233, 235, 177, 180, 223, 252, 239},
		},
		{ // band 1
			{201, 221, 201, 187, 192, 197, 242, 171, 241, 184, 230},
			{230, 225, 212, 172, 205, 210, 229, 202, 175, 234, 188},
			{214, 192, 201, 247, 231, 189, 234, 169, 190, 194, 162},
		},
		{ // band 2
			{190, 222, 182, 248, 188, 229, 207, 174, 206, 207, 254},
			{194, 184, 207, 182, 162, 234, 224, 230, 242, 170, 175},
			{225, 200, 211, 239, 235, 195, 170, 242, 177, 178, 215},
		},
		{ // band 3
			{211, 173, 214, 223, 195, 203, 231, 178, 218, 242, 218},
			{210, 166, 166, 215, 170, 242, 177, 169, 208, 211, 254},
			{245, 173, 213, 199, 172, 183, 218, 170, 161, 177, 231},
		},
		{ // band 4
			{164, 180, 242, 175, 200, 234, 168, 199, 230, 217, 192},
			{168, 166, 253, 198, 225, 214, 171, 217, 183, 177, 191},
			{183, 225, 189, 162, 160, 170, 172, 252, 228, 224, 187},
		},
		{ // band 5
			{243, 221, 193, 238, 193, 189, 229, 243, 237, 173, 165},
			{235, 225, 212, 201, 253, 205, 185, 218, 191, 169, 164},
			{208, 186, 161, 183, 218, 161, 220, 206, 204, 242, 203},
		},
		{ // band 6
			{179, 192, 187, 180, 233, 228, 208, 184, 164, 160, 224},
			{218, 204, 221, 204, 242, 181, 169, 188, 187, 253, 243},
			{239, 202, 182, 222, 251, 201, 190, 160, 174, 223, 211},
		},
		{ // band 7
			{194, 201, 246, 230, 163, 234, 221, 249, 232, 243, 240},
			{175, 193, 183, 160, 190, 231, 226, 198, 201, 231, 218},
			{182, 245, 168, 179, 166, 207, 248, 181, 168, 213, 169},
		},
	},
	{ // type 3
		{ // band 0
			{239, 217, 200, 235, 219, 247, 188, 238, 181, 237, 221},
			{235, 240, 172, 253, 254, 191, 217, 250, 177, 244, 252},
			{186, 203, 207, 174, 232, 191, 216, 240, 176, 217, 167},
		},
		{ // band 1
			{164, 203, 218, 248, 200, 217, 188, 186, 224, 202, 201},
			{250, 227, 238, 223, 196, 220, 217, 238, 184, 251, 187},
			{242, 174, 191, 217, 168, 167, 191, 210, 181, 167, 190},
		},
		{ // band 2
			{241, 187, 204, 237, 244, 207, 192, 164, 186, 200, 206},
			{175, 231, 179, 229, 237, 248, 167, 238, 230, 172, 160},
			{169, 209, 212, 206, 175, 204, 167, 222, 243, 168, 218},
		},
		{ // band 3
			{185, 172, 180, 166, 162, 217, 168, 202, 248, 244, 208},
			{177, 175, 230, 206, 190, 200, 177, 230, 251, 170, 190},
			{204, 234, 165, 203, 161, 220, 211, 231, 243, 197, 234},
		},
		{ // band 4
			{178, 225, 238, 216, 234, 209, 219, 239, 167, 240, 253},
			{182, 169, 162, 236, 166, 197, 190, 223, 192, 165, 207},
			{205, 254, 165, 196, 232, 203, 241, 252, 234, 233, 215},
		},
		{ // band 5
			{221, 229, 229, 170, 167, 169, 163, 198, 168, 235, 208},
			{242, 244, 186, 171, 250, 206, 249, 190, 228, 199, 209},
			{236, 248, 185, 234, 232, 176, 245, 245, 168, 234, 193},
		},
		{ // band 6
			{210, 187, 252, 165, 207, 226, 174, 177, 212, 186, 228},
			{205, 193, 188, 239, 243, 187, 244, 213, 210, 251, 168},
			{228, 203, 204, 168, 187, 252, 178, 242, 232, 234, 182},
		},
		{ // band 7
			{251, 173, 185, 187, 245, 174, 178, 219, 167, 236, 230},
			{242, 165, 233, 194, 227, 166, 185, 236, 177, 174, 176},
			{171, 245, 209, 177, 202, 181, 175, 247, 200, 220, 215},
		},
	},
}
