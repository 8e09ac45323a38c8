package weather

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	Convey("Given the documented WMO code groups", t, func() {
		groups := map[Category][]int{
			CategorySun:      {0},
			CategoryCloudSun: {1, 2},
			CategoryCloud:    {3},
			CategoryFog:      {45, 48},
			CategoryRain:     {51, 53, 55, 61, 63, 65, 80, 81, 82},
			CategorySnow:     {71, 73, 75, 77, 85, 86},
			CategoryLighting: {95, 96, 99},
		}

		Convey("every listed code maps to its category", func() {
			for want, codes := range groups {
				for _, code := range codes {
					So(Classify(code), ShouldEqual, want)
				}
			}
		})

		Convey("every unlisted code falls back to cloud", func() {
			listed := make(map[int]bool)
			for _, codes := range groups {
				for _, code := range codes {
					listed[code] = true
				}
			}
			for code := -10; code <= 120; code++ {
				if listed[code] {
					continue
				}
				So(Classify(code), ShouldEqual, CategoryCloud)
			}
		})

		Convey("the thunderstorm label keeps its wire spelling", func() {
			So(string(Classify(95)), ShouldEqual, "lighting")
		})
	})

	Convey("ClassifyAll preserves order and length", t, func() {
		So(ClassifyAll([]int{61, 0, 3, 71, 95, 2}), ShouldResemble, []Category{
			CategoryRain, CategorySun, CategoryCloud, CategorySnow, CategoryLighting, CategoryCloudSun,
		})
		So(ClassifyAll(nil), ShouldBeEmpty)
	})
}
