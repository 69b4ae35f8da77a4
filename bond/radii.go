// SPDX-License-Identifier: MIT

package bond

// Radii holds the covalent radii of one element in picometres.
// A zero entry means no value is tabulated for that bond order.
type Radii struct {
	Single, Double, Triple float64
}

// Max returns the largest tabulated radius, or 0 when none is.
func (r Radii) Max() float64 {
	return max(r.Single, r.Double, r.Triple)
}

// pyykko lists single/double/triple bond covalent radii (pm) after
// P. Pyykkö, J. Phys. Chem. A 113, 12770 (2009) and the earlier
// multiple-bond papers of the same series.
var pyykko = map[string]Radii{
	"H": {32, 0, 0}, "He": {46, 0, 0},

	"Li": {133, 124, 0}, "Be": {102, 90, 85}, "B": {85, 78, 73}, "C": {75, 67, 60},
	"N": {71, 60, 54}, "O": {63, 57, 53}, "F": {64, 59, 53}, "Ne": {67, 96, 0},

	"Na": {155, 160, 0}, "Mg": {139, 132, 127}, "Al": {126, 113, 111}, "Si": {116, 107, 102},
	"P": {111, 102, 94}, "S": {103, 94, 95}, "Cl": {99, 95, 93}, "Ar": {96, 107, 96},

	"K": {196, 193, 0}, "Ca": {171, 147, 133}, "Sc": {148, 116, 114}, "Ti": {136, 117, 108},
	"V": {134, 112, 106}, "Cr": {122, 111, 103}, "Mn": {119, 105, 103}, "Fe": {116, 109, 102},
	"Co": {111, 103, 96}, "Ni": {110, 101, 101}, "Cu": {112, 115, 120}, "Zn": {118, 120, 0},
	"Ga": {124, 117, 121}, "Ge": {121, 111, 114}, "As": {121, 114, 106}, "Se": {116, 107, 107},
	"Br": {114, 109, 110}, "Kr": {117, 121, 108},

	"Rb": {210, 202, 0}, "Sr": {185, 157, 139}, "Y": {163, 130, 124}, "Zr": {154, 127, 121},
	"Nb": {147, 125, 116}, "Mo": {138, 121, 113}, "Tc": {128, 120, 110}, "Ru": {125, 114, 103},
	"Rh": {125, 110, 106}, "Pd": {120, 117, 112}, "Ag": {128, 139, 137}, "Cd": {136, 144, 0},
	"In": {142, 136, 146}, "Sn": {140, 130, 132}, "Sb": {140, 133, 127}, "Te": {136, 128, 121},
	"I": {133, 129, 125}, "Xe": {131, 135, 122},

	"Cs": {232, 209, 0}, "Ba": {196, 161, 149}, "La": {180, 139, 139},
	"Ce": {163, 137, 131}, "Pr": {176, 138, 128}, "Nd": {174, 137, 0}, "Pm": {173, 135, 0},
	"Sm": {172, 134, 0}, "Eu": {168, 134, 0}, "Gd": {169, 135, 132}, "Tb": {168, 135, 0},
	"Dy": {167, 133, 0}, "Ho": {166, 133, 0}, "Er": {165, 133, 0}, "Tm": {164, 131, 0},
	"Yb": {170, 129, 0}, "Lu": {162, 131, 131},
	"Hf": {152, 128, 122}, "Ta": {146, 126, 119}, "W": {137, 120, 115}, "Re": {131, 119, 110},
	"Os": {129, 116, 109}, "Ir": {122, 115, 107}, "Pt": {123, 112, 110}, "Au": {124, 121, 123},
	"Hg": {133, 142, 0}, "Tl": {144, 142, 150}, "Pb": {144, 135, 137}, "Bi": {151, 141, 135},
	"Po": {145, 135, 129}, "At": {147, 138, 138}, "Rn": {142, 145, 133},

	"Fr": {223, 218, 0}, "Ra": {201, 173, 159}, "Ac": {186, 153, 140}, "Th": {175, 143, 136},
	"Pa": {169, 138, 129}, "U": {170, 134, 118}, "Np": {171, 136, 116}, "Pu": {172, 135, 0},
}
