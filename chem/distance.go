package chem

import "github.com/proteingraph/resichem/table"

// GranthamChemicalDistance maps ordered residue pairs (one-letter codes,
// e.g. "AC") to their Grantham chemical distance, normalised to [0, 1].
// Both directions of every pair are stored explicitly; the stored values
// are row-normalised, so "AC" and "CA" can differ slightly and neither
// direction may be derived from the other. Self-pairs are 0.0.
//
// Grantham, R.: "Amino Acid Difference Formula to Help Explain Protein
// Evolution", Science 185 (4154), 1974. Values via ProPy3
// (https://github.com/MartinThoma/propy3).
var GranthamChemicalDistance = table.New("chem.grantham_distance", map[string]float64{
	"AA": 0.0,
	"AC": 0.112,
	"AD": 0.819,
	"AE": 0.827,
	"AF": 0.54,
	"AG": 0.208,
	"AH": 0.696,
	"AI": 0.407,
	"AK": 0.891,
	"AL": 0.406,
	"AM": 0.379,
	"AN": 0.318,
	"AP": 0.191,
	"AQ": 0.372,
	"AR": 1.0,
	"AS": 0.094,
	"AT": 0.22,
	"AV": 0.273,
	"AW": 0.739,
	"AY": 0.552,
	"CA": 0.114,
	"CC": 0.0,
	"CD": 0.847,
	"CE": 0.838,
	"CF": 0.437,
	"CG": 0.32,
	"CH": 0.66,
	"CI": 0.304,
	"CK": 0.887,
	"CL": 0.301,
	"CM": 0.277,
	"CN": 0.324,
	"CP": 0.157,
	"CQ": 0.341,
	"CR": 1.0,
	"CS": 0.176,
	"CT": 0.233,
	"CV": 0.167,
	"CW": 0.639,
	"CY": 0.457,
	"DA": 0.729,
	"DC": 0.742,
	"DD": 0.0,
	"DE": 0.124,
	"DF": 0.924,
	"DG": 0.697,
	"DH": 0.435,
	"DI": 0.847,
	"DK": 0.249,
	"DL": 0.841,
	"DM": 0.819,
	"DN": 0.56,
	"DP": 0.657,
	"DQ": 0.584,
	"DR": 0.295,
	"DS": 0.667,
	"DT": 0.649,
	"DV": 0.797,
	"DW": 1.0,
	"DY": 0.836,
	"EA": 0.79,
	"EC": 0.788,
	"ED": 0.133,
	"EE": 0.0,
	"EF": 0.932,
	"EG": 0.779,
	"EH": 0.406,
	"EI": 0.86,
	"EK": 0.143,
	"EL": 0.854,
	"EM": 0.83,
	"EN": 0.599,
	"EP": 0.688,
	"EQ": 0.598,
	"ER": 0.234,
	"ES": 0.726,
	"ET": 0.682,
	"EV": 0.824,
	"EW": 1.0,
	"EY": 0.837,
	"FA": 0.508,
	"FC": 0.405,
	"FD": 0.977,
	"FE": 0.918,
	"FF": 0.0,
	"FG": 0.69,
	"FH": 0.663,
	"FI": 0.128,
	"FK": 0.903,
	"FL": 0.131,
	"FM": 0.169,
	"FN": 0.541,
	"FP": 0.42,
	"FQ": 0.459,
	"FR": 1.0,
	"FS": 0.548,
	"FT": 0.499,
	"FV": 0.252,
	"FW": 0.207,
	"FY": 0.179,
	"GA": 0.206,
	"GC": 0.312,
	"GD": 0.776,
	"GE": 0.807,
	"GF": 0.727,
	"GG": 0.0,
	"GH": 0.769,
	"GI": 0.592,
	"GK": 0.894,
	"GL": 0.591,
	"GM": 0.557,
	"GN": 0.381,
	"GP": 0.323,
	"GQ": 0.467,
	"GR": 1.0,
	"GS": 0.158,
	"GT": 0.272,
	"GV": 0.464,
	"GW": 0.923,
	"GY": 0.728,
	"HA": 0.896,
	"HC": 0.836,
	"HD": 0.629,
	"HE": 0.547,
	"HF": 0.907,
	"HG": 1.0,
	"HH": 0.0,
	"HI": 0.848,
	"HK": 0.566,
	"HL": 0.842,
	"HM": 0.825,
	"HN": 0.754,
	"HP": 0.777,
	"HQ": 0.716,
	"HR": 0.697,
	"HS": 0.865,
	"HT": 0.834,
	"HV": 0.831,
	"HW": 0.981,
	"HY": 0.821,
	"IA": 0.403,
	"IC": 0.296,
	"ID": 0.942,
	"IE": 0.891,
	"IF": 0.134,
	"IG": 0.592,
	"IH": 0.652,
	"II": 0.0,
	"IK": 0.892,
	"IL": 0.013,
	"IM": 0.057,
	"IN": 0.457,
	"IP": 0.311,
	"IQ": 0.383,
	"IR": 1.0,
	"IS": 0.443,
	"IT": 0.396,
	"IV": 0.133,
	"IW": 0.339,
	"IY": 0.213,
	"KA": 0.889,
	"KC": 0.871,
	"KD": 0.279,
	"KE": 0.149,
	"KF": 0.957,
	"KG": 0.9,
	"KH": 0.438,
	"KI": 0.899,
	"KK": 0.0,
	"KL": 0.892,
	"KM": 0.871,
	"KN": 0.667,
	"KP": 0.757,
	"KQ": 0.639,
	"KR": 0.154,
	"KS": 0.825,
	"KT": 0.759,
	"KV": 0.882,
	"KW": 1.0,
	"KY": 0.848,
	"LA": 0.405,
	"LC": 0.296,
	"LD": 0.944,
	"LE": 0.892,
	"LF": 0.139,
	"LG": 0.596,
	"LH": 0.653,
	"LI": 0.013,
	"LK": 0.893,
	"LL": 0.0,
	"LM": 0.062,
	"LN": 0.452,
	"LP": 0.309,
	"LQ": 0.376,
	"LR": 1.0,
	"LS": 0.443,
	"LT": 0.397,
	"LV": 0.133,
	"LW": 0.341,
	"LY": 0.205,
	"MA": 0.383,
	"MC": 0.276,
	"MD": 0.932,
	"ME": 0.879,
	"MF": 0.182,
	"MG": 0.569,
	"MH": 0.648,
	"MI": 0.058,
	"MK": 0.884,
	"ML": 0.062,
	"MM": 0.0,
	"MN": 0.447,
	"MP": 0.285,
	"MQ": 0.372,
	"MR": 1.0,
	"MS": 0.417,
	"MT": 0.358,
	"MV": 0.12,
	"MW": 0.391,
	"MY": 0.255,
	"NA": 0.424,
	"NC": 0.425,
	"ND": 0.838,
	"NE": 0.835,
	"NF": 0.766,
	"NG": 0.512,
	"NH": 0.78,
	"NI": 0.615,
	"NK": 0.891,
	"NL": 0.603,
	"NM": 0.588,
	"NN": 0.0,
	"NP": 0.266,
	"NQ": 0.175,
	"NR": 1.0,
	"NS": 0.361,
	"NT": 0.368,
	"NV": 0.503,
	"NW": 0.945,
	"NY": 0.641,
	"PA": 0.22,
	"PC": 0.179,
	"PD": 0.852,
	"PE": 0.831,
	"PF": 0.515,
	"PG": 0.376,
	"PH": 0.696,
	"PI": 0.363,
	"PK": 0.875,
	"PL": 0.357,
	"PM": 0.326,
	"PN": 0.231,
	"PP": 0.0,
	"PQ": 0.228,
	"PR": 1.0,
	"PS": 0.196,
	"PT": 0.161,
	"PV": 0.244,
	"PW": 0.72,
	"PY": 0.481,
	"QA": 0.512,
	"QC": 0.462,
	"QD": 0.903,
	"QE": 0.861,
	"QF": 0.671,
	"QG": 0.648,
	"QH": 0.765,
	"QI": 0.532,
	"QK": 0.881,
	"QL": 0.518,
	"QM": 0.505,
	"QN": 0.181,
	"QP": 0.272,
	"QQ": 0.0,
	"QR": 1.0,
	"QS": 0.461,
	"QT": 0.389,
	"QV": 0.464,
	"QW": 0.831,
	"QY": 0.522,
	"RA": 0.919,
	"RC": 0.905,
	"RD": 0.305,
	"RE": 0.225,
	"RF": 0.977,
	"RG": 0.928,
	"RH": 0.498,
	"RI": 0.929,
	"RK": 0.141,
	"RL": 0.92,
	"RM": 0.908,
	"RN": 0.69,
	"RP": 0.796,
	"RQ": 0.668,
	"RR": 0.0,
	"RS": 0.86,
	"RT": 0.808,
	"RV": 0.914,
	"RW": 1.0,
	"RY": 0.859,
	"SA": 0.1,
	"SC": 0.185,
	"SD": 0.801,
	"SE": 0.812,
	"SF": 0.622,
	"SG": 0.17,
	"SH": 0.718,
	"SI": 0.478,
	"SK": 0.883,
	"SL": 0.474,
	"SM": 0.44,
	"SN": 0.289,
	"SP": 0.181,
	"SQ": 0.358,
	"SR": 1.0,
	"SS": 0.0,
	"ST": 0.174,
	"SV": 0.342,
	"SW": 0.827,
	"SY": 0.615,
	"TA": 0.251,
	"TC": 0.261,
	"TD": 0.83,
	"TE": 0.812,
	"TF": 0.604,
	"TG": 0.312,
	"TH": 0.737,
	"TI": 0.455,
	"TK": 0.866,
	"TL": 0.453,
	"TM": 0.403,
	"TN": 0.315,
	"TP": 0.159,
	"TQ": 0.322,
	"TR": 1.0,
	"TS": 0.185,
	"TT": 0.0,
	"TV": 0.345,
	"TW": 0.816,
	"TY": 0.596,
	"VA": 0.275,
	"VC": 0.165,
	"VD": 0.9,
	"VE": 0.867,
	"VF": 0.269,
	"VG": 0.471,
	"VH": 0.649,
	"VI": 0.135,
	"VK": 0.889,
	"VL": 0.134,
	"VM": 0.12,
	"VN": 0.38,
	"VP": 0.212,
	"VQ": 0.339,
	"VR": 1.0,
	"VS": 0.322,
	"VT": 0.305,
	"VV": 0.0,
	"VW": 0.472,
	"VY": 0.31,
	"WA": 0.658,
	"WC": 0.56,
	"WD": 1.0,
	"WE": 0.931,
	"WF": 0.196,
	"WG": 0.829,
	"WH": 0.678,
	"WI": 0.305,
	"WK": 0.892,
	"WL": 0.304,
	"WM": 0.344,
	"WN": 0.631,
	"WP": 0.555,
	"WQ": 0.538,
	"WR": 0.968,
	"WS": 0.689,
	"WT": 0.638,
	"WV": 0.418,
	"WW": 0.0,
	"WY": 0.204,
	"YA": 0.587,
	"YC": 0.478,
	"YD": 1.0,
	"YE": 0.932,
	"YF": 0.202,
	"YG": 0.782,
	"YH": 0.678,
	"YI": 0.23,
	"YK": 0.904,
	"YL": 0.219,
	"YM": 0.268,
	"YN": 0.512,
	"YP": 0.444,
	"YQ": 0.404,
	"YR": 0.995,
	"YS": 0.612,
	"YT": 0.557,
	"YV": 0.328,
	"YW": 0.244,
	"YY": 0.0,
})

// SchneiderWredeDistance maps ordered residue pairs (one-letter codes) to
// their Schneider-Wrede physicochemical distance, normalised to [0, 1].
// Storage follows the same conventions as GranthamChemicalDistance.
//
// Schneider, G. and Wrede, P.: "The rational design of amino acid
// sequences by artificial neural networks and simulated molecular
// evolution", Biophysical Journal 66 (2), 1994. Values via ProPy3.
var SchneiderWredeDistance = table.New("chem.schneider_wrede_distance", map[string]float64{
	"GW": 0.923,
	"GV": 0.464,
	"GT": 0.272,
	"GS": 0.158,
	"GR": 1.0,
	"GQ": 0.467,
	"GP": 0.323,
	"GY": 0.728,
	"GG": 0.0,
	"GF": 0.727,
	"GE": 0.807,
	"GD": 0.776,
	"GC": 0.312,
	"GA": 0.206,
	"GN": 0.381,
	"GM": 0.557,
	"GL": 0.591,
	"GK": 0.894,
	"GI": 0.592,
	"GH": 0.769,
	"ME": 0.879,
	"MD": 0.932,
	"MG": 0.569,
	"MF": 0.182,
	"MA": 0.383,
	"MC": 0.276,
	"MM": 0.0,
	"ML": 0.062,
	"MN": 0.447,
	"MI": 0.058,
	"MH": 0.648,
	"MK": 0.884,
	"MT": 0.358,
	"MW": 0.391,
	"MV": 0.12,
	"MQ": 0.372,
	"MP": 0.285,
	"MS": 0.417,
	"MR": 1.0,
	"MY": 0.255,
	"FP": 0.42,
	"FQ": 0.459,
	"FR": 1.0,
	"FS": 0.548,
	"FT": 0.499,
	"FV": 0.252,
	"FW": 0.207,
	"FY": 0.179,
	"FA": 0.508,
	"FC": 0.405,
	"FD": 0.977,
	"FE": 0.918,
	"FF": 0.0,
	"FG": 0.69,
	"FH": 0.663,
	"FI": 0.128,
	"FK": 0.903,
	"FL": 0.131,
	"FM": 0.169,
	"FN": 0.541,
	"SY": 0.615,
	"SS": 0.0,
	"SR": 1.0,
	"SQ": 0.358,
	"SP": 0.181,
	"SW": 0.827,
	"SV": 0.342,
	"ST": 0.174,
	"SK": 0.883,
	"SI": 0.478,
	"SH": 0.718,
	"SN": 0.289,
	"SM": 0.44,
	"SL": 0.474,
	"SC": 0.185,
	"SA": 0.1,
	"SG": 0.17,
	"SF": 0.622,
	"SE": 0.812,
	"SD": 0.801,
	"YI": 0.23,
	"YH": 0.678,
	"YK": 0.904,
	"YM": 0.268,
	"YL": 0.219,
	"YN": 0.512,
	"YA": 0.587,
	"YC": 0.478,
	"YE": 0.932,
	"YD": 1.0,
	"YG": 0.782,
	"YF": 0.202,
	"YY": 0.0,
	"YQ": 0.404,
	"YP": 0.444,
	"YS": 0.612,
	"YR": 0.995,
	"YT": 0.557,
	"YW": 0.244,
	"YV": 0.328,
	"LF": 0.139,
	"LG": 0.596,
	"LD": 0.944,
	"LE": 0.892,
	"LC": 0.296,
	"LA": 0.405,
	"LN": 0.452,
	"LL": 0.0,
	"LM": 0.062,
	"LK": 0.893,
	"LH": 0.653,
	"LI": 0.013,
	"LV": 0.133,
	"LW": 0.341,
	"LT": 0.397,
	"LR": 1.0,
	"LS": 0.443,
	"LP": 0.309,
	"LQ": 0.376,
	"LY": 0.205,
	"RT": 0.808,
	"RV": 0.914,
	"RW": 1.0,
	"RP": 0.796,
	"RQ": 0.668,
	"RR": 0.0,
	"RS": 0.86,
	"RY": 0.859,
	"RD": 0.305,
	"RE": 0.225,
	"RF": 0.977,
	"RG": 0.928,
	"RA": 0.919,
	"RC": 0.905,
	"RL": 0.92,
	"RM": 0.908,
	"RN": 0.69,
	"RH": 0.498,
	"RI": 0.929,
	"RK": 0.141,
	"VH": 0.649,
	"VI": 0.135,
	"EM": 0.83,
	"EL": 0.854,
	"EN": 0.599,
	"EI": 0.86,
	"EH": 0.406,
	"EK": 0.143,
	"EE": 0.0,
	"ED": 0.133,
	"EG": 0.779,
	"EF": 0.932,
	"EA": 0.79,
	"EC": 0.788,
	"VM": 0.12,
	"EY": 0.837,
	"VN": 0.38,
	"ET": 0.682,
	"EW": 1.0,
	"EV": 0.824,
	"EQ": 0.598,
	"EP": 0.688,
	"ES": 0.726,
	"ER": 0.234,
	"VP": 0.212,
	"VQ": 0.339,
	"VR": 1.0,
	"VT": 0.305,
	"VW": 0.472,
	"KC": 0.871,
	"KA": 0.889,
	"KG": 0.9,
	"KF": 0.957,
	"KE": 0.149,
	"KD": 0.279,
	"KK": 0.0,
	"KI": 0.899,
	"KH": 0.438,
	"KN": 0.667,
	"KM": 0.871,
	"KL": 0.892,
	"KS": 0.825,
	"KR": 0.154,
	"KQ": 0.639,
	"KP": 0.757,
	"KW": 1.0,
	"KV": 0.882,
	"KT": 0.759,
	"KY": 0.848,
	"DN": 0.56,
	"DL": 0.841,
	"DM": 0.819,
	"DK": 0.249,
	"DH": 0.435,
	"DI": 0.847,
	"DF": 0.924,
	"DG": 0.697,
	"DD": 0.0,
	"DE": 0.124,
	"DC": 0.742,
	"DA": 0.729,
	"DY": 0.836,
	"DV": 0.797,
	"DW": 1.0,
	"DT": 0.649,
	"DR": 0.295,
	"DS": 0.667,
	"DP": 0.657,
	"DQ": 0.584,
	"QQ": 0.0,
	"QP": 0.272,
	"QS": 0.461,
	"QR": 1.0,
	"QT": 0.389,
	"QW": 0.831,
	"QV": 0.464,
	"QY": 0.522,
	"QA": 0.512,
	"QC": 0.462,
	"QE": 0.861,
	"QD": 0.903,
	"QG": 0.648,
	"QF": 0.671,
	"QI": 0.532,
	"QH": 0.765,
	"QK": 0.881,
	"QM": 0.505,
	"QL": 0.518,
	"QN": 0.181,
	"WG": 0.829,
	"WF": 0.196,
	"WE": 0.931,
	"WD": 1.0,
	"WC": 0.56,
	"WA": 0.658,
	"WN": 0.631,
	"WM": 0.344,
	"WL": 0.304,
	"WK": 0.892,
	"WI": 0.305,
	"WH": 0.678,
	"WW": 0.0,
	"WV": 0.418,
	"WT": 0.638,
	"WS": 0.689,
	"WR": 0.968,
	"WQ": 0.538,
	"WP": 0.555,
	"WY": 0.204,
	"PR": 1.0,
	"PS": 0.196,
	"PP": 0.0,
	"PQ": 0.228,
	"PV": 0.244,
	"PW": 0.72,
	"PT": 0.161,
	"PY": 0.481,
	"PC": 0.179,
	"PA": 0.22,
	"PF": 0.515,
	"PG": 0.376,
	"PD": 0.852,
	"PE": 0.831,
	"PK": 0.875,
	"PH": 0.696,
	"PI": 0.363,
	"PN": 0.231,
	"PL": 0.357,
	"PM": 0.326,
	"CK": 0.887,
	"CI": 0.304,
	"CH": 0.66,
	"CN": 0.324,
	"CM": 0.277,
	"CL": 0.301,
	"CC": 0.0,
	"CA": 0.114,
	"CG": 0.32,
	"CF": 0.437,
	"CE": 0.838,
	"CD": 0.847,
	"CY": 0.457,
	"CS": 0.176,
	"CR": 1.0,
	"CQ": 0.341,
	"CP": 0.157,
	"CW": 0.639,
	"CV": 0.167,
	"CT": 0.233,
	"IY": 0.213,
	"VA": 0.275,
	"VC": 0.165,
	"VD": 0.9,
	"VE": 0.867,
	"VF": 0.269,
	"VG": 0.471,
	"IQ": 0.383,
	"IP": 0.311,
	"IS": 0.443,
	"IR": 1.0,
	"VL": 0.134,
	"IT": 0.396,
	"IW": 0.339,
	"IV": 0.133,
	"II": 0.0,
	"IH": 0.652,
	"IK": 0.892,
	"VS": 0.322,
	"IM": 0.057,
	"IL": 0.013,
	"VV": 0.0,
	"IN": 0.457,
	"IA": 0.403,
	"VY": 0.31,
	"IC": 0.296,
	"IE": 0.891,
	"ID": 0.942,
	"IG": 0.592,
	"IF": 0.134,
	"HY": 0.821,
	"HR": 0.697,
	"HS": 0.865,
	"HP": 0.777,
	"HQ": 0.716,
	"HV": 0.831,
	"HW": 0.981,
	"HT": 0.834,
	"HK": 0.566,
	"HH": 0.0,
	"HI": 0.848,
	"HN": 0.754,
	"HL": 0.842,
	"HM": 0.825,
	"HC": 0.836,
	"HA": 0.896,
	"HF": 0.907,
	"HG": 1.0,
	"HD": 0.629,
	"HE": 0.547,
	"NH": 0.78,
	"NI": 0.615,
	"NK": 0.891,
	"NL": 0.603,
	"NM": 0.588,
	"NN": 0.0,
	"NA": 0.424,
	"NC": 0.425,
	"ND": 0.838,
	"NE": 0.835,
	"NF": 0.766,
	"NG": 0.512,
	"NY": 0.641,
	"NP": 0.266,
	"NQ": 0.175,
	"NR": 1.0,
	"NS": 0.361,
	"NT": 0.368,
	"NV": 0.503,
	"NW": 0.945,
	"TY": 0.596,
	"TV": 0.345,
	"TW": 0.816,
	"TT": 0.0,
	"TR": 1.0,
	"TS": 0.185,
	"TP": 0.159,
	"TQ": 0.322,
	"TN": 0.315,
	"TL": 0.453,
	"TM": 0.403,
	"TK": 0.866,
	"TH": 0.737,
	"TI": 0.455,
	"TF": 0.604,
	"TG": 0.312,
	"TD": 0.83,
	"TE": 0.812,
	"TC": 0.261,
	"TA": 0.251,
	"AA": 0.0,
	"AC": 0.112,
	"AE": 0.827,
	"AD": 0.819,
	"AG": 0.208,
	"AF": 0.54,
	"AI": 0.407,
	"AH": 0.696,
	"AK": 0.891,
	"AM": 0.379,
	"AL": 0.406,
	"AN": 0.318,
	"AQ": 0.372,
	"AP": 0.191,
	"AS": 0.094,
	"AR": 1.0,
	"AT": 0.22,
	"AW": 0.739,
	"AV": 0.273,
	"AY": 0.552,
	"VK": 0.889,
})
