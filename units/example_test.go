package units_test

import (
	"fmt"

	"github.com/lone-faerie/uomgrade/units"
)

func ExampleConvert() {
	c, _ := units.Convert(units.Fahrenheit, units.Celsius, 70)
	fmt.Printf("%.2f\n", c)

	gal, _ := units.Convert(units.Liters, units.Gallons, 1)
	fmt.Println(gal)

	_, ok := units.Convert(units.Celsius, units.Liters, 100)
	fmt.Println(ok)

	// Output:
	// 21.11
	// 0.2641
	// false
}

func ExampleParse() {
	u, err := units.Parse("cubic-feet")
	fmt.Println(u, u.Family(), err)

	_, err = units.Parse("furlongs")
	fmt.Println(err)

	// Output:
	// CUBIC-FEET volume <nil>
	// unknown unit "furlongs"
}
