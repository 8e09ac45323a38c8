package weather

// Classify maps a WMO weather code onto a display Category.
// Codes outside the known groups fall back to CategoryCloud.
func Classify(code int) Category {
	switch code {
	case 0:
		return CategorySun
	case 1, 2:
		return CategoryCloudSun
	case 3:
		return CategoryCloud
	case 45, 48:
		return CategoryFog
	case 51, 53, 55, 61, 63, 65, 80, 81, 82:
		return CategoryRain
	case 71, 73, 75, 77, 85, 86:
		return CategorySnow
	case 95, 96, 99:
		return CategoryLighting
	default:
		return CategoryCloud
	}
}

// ClassifyAll applies Classify elementwise.
func ClassifyAll(codes []int) []Category {
	out := make([]Category, len(codes))
	for i, c := range codes {
		out[i] = Classify(c)
	}
	return out
}
