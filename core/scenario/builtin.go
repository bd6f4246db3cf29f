package scenario

import "fmt"

const builtinSource = `
compare "grams_vs_kilograms" {
  first  = "1000 GRAM"
  second = "1 KILOGRAM"
}

convert "grams_to_kilograms" {
  value = 1000
  from  = "GRAM"
  to    = "KILOGRAM"
}

add "kilograms_plus_pounds" {
  first  = "1 KILOGRAM"
  second = "2.20462 POUND"
}

add "kilograms_plus_pounds_in_grams" {
  first  = "1 KILOGRAM"
  second = "2.20462 POUND"
  target = "GRAM"
}

add "feet_plus_feet" {
  first  = "1 FEET"
  second = "2 FEET"
}

add "feet_plus_inches" {
  first  = "1 FEET"
  second = "12 INCHES"
}

add "yards_plus_feet" {
  first  = "1 YARDS"
  second = "3 FEET"
}

compare "feet_vs_inches" {
  first  = "1 FEET"
  second = "12 INCHES"
}

convert "centimeters_to_inches" {
  value = 2.54
  from  = "CENTIMETERS"
  to    = "INCHES"
}
`

// Builtin returns the standard demonstration script
func Builtin() *File {
	f, err := Parse([]byte(builtinSource), "builtin.hcl")
	if err != nil {
		panic(fmt.Sprintf("builtin scenario: %v", err))
	}
	f.Name = "builtin"
	return f
}
