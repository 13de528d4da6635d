package mandel

import "sort"

// Region is a rectangular window of the complex plane, independent of any
// raster. Fit it to a pixel size to get a renderable viewport.
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Viewport maps the region onto a width x height raster.
func (r Region) Viewport(width, height int32) Viewport {
	return Viewport{
		Xmin:  r.Xmin,
		Xmax:  r.Xmax,
		Ymin:  r.Ymin,
		Ymax:  r.Ymax,
		Width: width, Height: height,
	}
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Full Set – the whole figure with room around it
	FullSet = Region{
		Xmin: -2.0,
		Xmax: 2.0,
		Ymin: -2.0,
		Ymax: 2.0,
	}

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{
		Xmin: -0.8,
		Xmax: -0.7,
		Ymin: 0.05,
		Ymax: 0.15,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		Xmin: -1.85,
		Xmax: -1.75,
		Ymin: -0.10,
		Ymax: -0.02,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		Xmin: -0.7435,
		Xmax: -0.7420,
		Ymin: 0.1310,
		Ymax: 0.1325,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{
		Xmin: -0.7480,
		Xmax: -0.7450,
		Ymin: 0.0950,
		Ymax: 0.0980,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{
		Xmin: -0.7400,
		Xmax: -0.7350,
		Ymin: 0.1800,
		Ymax: 0.1850,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{
		Xmin: -1.7390,
		Xmax: -1.7375,
		Ymin: -0.0235,
		Ymax: -0.0220,
	}
)

// Regions indexes the landmarks by the names the frontends accept on the
// command line.
var Regions = map[string]Region{
	"full":     FullSet,
	"seahorse": SeahorseValley,
	"elephant": ElephantValley,
	"spiral":   SpiralMinibrot,
	"triple":   TripleSpiral,
	"dragon":   ValleyOfTheDragon,
	"minibrot": MinibrotInMiniSpiral,
}

// RegionNames returns the landmark names in sorted order, for usage text.
func RegionNames() []string {
	names := make([]string, 0, len(Regions))
	for name := range Regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
