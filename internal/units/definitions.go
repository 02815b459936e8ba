package units

import "math"

// KindPrefix marks definitions that scale the unit that follows them.
const KindPrefix = "prefix"

// Unity is the key of the dimensionless unit.
const Unity = "<1>"

// Definition describes one entry of the unit table. Numerator and
// Denominator reference other unit keys; base units reference themselves.
type Definition struct {
	Key         string
	Aliases     []string
	Scalar      float64
	Kind        string
	Numerator   []string
	Denominator []string
}

// IsPrefix reports whether d is a prefix definition.
func (d Definition) IsPrefix() bool {
	return d.Kind == KindPrefix
}

// BaseUnits lists the keys every unit resolves to.
var BaseUnits = []string{
	"<meter>", "<kilogram>", "<second>", "<mole>", "<ampere>", "<radian>", "<kelvin>",
	"<temp-K>", "<byte>", "<dollar>", "<candela>", "<each>", "<steradian>", "<decibel>",
}

func prefix(key string, value float64, aliases ...string) Definition {
	return Definition{Key: key, Aliases: aliases, Scalar: value, Kind: KindPrefix}
}

// definitions is the built-in table in declaration order. Order matters:
// when two entries share an alias the later entry wins.
var definitions = []Definition{
	// prefixes
	prefix("<googol>", 1e100, "googol"),
	prefix("<kibi>", 1 << 10, "Ki", "Kibi", "kibi"),
	prefix("<mebi>", 1 << 20, "Mi", "Mebi", "mebi"),
	prefix("<gibi>", 1 << 30, "Gi", "Gibi", "gibi"),
	prefix("<tebi>", 1 << 40, "Ti", "Tebi", "tebi"),
	prefix("<pebi>", 1 << 50, "Pi", "Pebi", "pebi"),
	prefix("<exi>", 1 << 60, "Ei", "Exi", "exi"),
	prefix("<zebi>", 1 << 70, "Zi", "Zebi", "zebi"),
	prefix("<yebi>", 1 << 80, "Yi", "Yebi", "yebi"),
	prefix("<yotta>", 1e24, "Y", "Yotta", "yotta"),
	prefix("<zetta>", 1e21, "Z", "Zetta", "zetta"),
	prefix("<exa>", 1e18, "E", "Exa", "exa"),
	prefix("<peta>", 1e15, "P", "Peta", "peta"),
	prefix("<tera>", 1e12, "T", "Tera", "tera"),
	prefix("<giga>", 1e9, "G", "Giga", "giga"),
	prefix("<mega>", 1e6, "M", "Mega", "mega"),
	prefix("<kilo>", 1e3, "k", "kilo"),
	prefix("<hecto>", 1e2, "h", "Hecto", "hecto"),
	prefix("<deca>", 1e1, "da", "Deca", "deca", "deka"),
	prefix("<deci>", 1e-1, "d", "Deci", "deci"),
	prefix("<centi>", 1e-2, "c", "Centi", "centi"),
	prefix("<milli>", 1e-3, "m", "Milli", "milli"),
	prefix("<micro>", 1e-6, "u", "\u03bc", "\u00b5", "Micro", "mc", "micro"),
	prefix("<nano>", 1e-9, "n", "Nano", "nano"),
	prefix("<pico>", 1e-12, "p", "Pico", "pico"),
	prefix("<femto>", 1e-15, "f", "Femto", "femto"),
	prefix("<atto>", 1e-18, "a", "Atto", "atto"),
	prefix("<zepto>", 1e-21, "z", "Zepto", "zepto"),
	prefix("<yocto>", 1e-24, "y", "Yocto", "yocto"),

	// unity
	{Key: "<1>", Aliases: []string{"1", "<1>"}, Scalar: 1},

	// length
	{Key: "<meter>", Aliases: []string{"m", "meter", "meters", "metre", "metres"}, Scalar: 1.0, Kind: "length", Numerator: []string{"<meter>"}},
	{Key: "<inch>", Aliases: []string{"in", "inch", "inches", `"`}, Scalar: 0.0254, Kind: "length", Numerator: []string{"<meter>"}},
	{Key: "<foot>", Aliases: []string{"ft", "foot", "feet", "'"}, Scalar: 0.3048, Kind: "length", Numerator: []string{"<meter>"}},
	{Key: "<yard>", Aliases: []string{"yd", "yard", "yards"}, Scalar: 0.9144, Kind: "length", Numerator: []string{"<meter>"}},
	{Key: "<mile>", Aliases: []string{"mi", "mile", "miles"}, Scalar: 1609.344, Kind: "length", Numerator: []string{"<meter>"}},
	{Key: "<naut-mile>", Aliases: []string{"nmi", "naut-mile"}, Scalar: 1852, Kind: "length", Numerator: []string{"<meter>"}},
	{Key: "<league>", Aliases: []string{"league", "leagues"}, Scalar: 4828, Kind: "length", Numerator: []string{"<meter>"}},
	{Key: "<furlong>", Aliases: []string{"furlong", "furlongs"}, Scalar: 201.2, Kind: "length", Numerator: []string{"<meter>"}},
	{Key: "<rod>", Aliases: []string{"rd", "rod", "rods"}, Scalar: 5.029, Kind: "length", Numerator: []string{"<meter>"}},
	{Key: "<mil>", Aliases: []string{"mil", "mils"}, Scalar: 0.0000254, Kind: "length", Numerator: []string{"<meter>"}},
	{Key: "<angstrom>", Aliases: []string{"ang", "angstrom", "angstroms"}, Scalar: 1e-10, Kind: "length", Numerator: []string{"<meter>"}},
	{Key: "<fathom>", Aliases: []string{"fathom", "fathoms"}, Scalar: 1.829, Kind: "length", Numerator: []string{"<meter>"}},
	{Key: "<pica>", Aliases: []string{"pica", "picas"}, Scalar: 0.00423333333, Kind: "length", Numerator: []string{"<meter>"}},
	{Key: "<point>", Aliases: []string{"pt", "point", "points"}, Scalar: 0.000352777778, Kind: "length", Numerator: []string{"<meter>"}},
	{Key: "<redshift>", Aliases: []string{"z", "red-shift", "redshift"}, Scalar: 1.302773e26, Kind: "length", Numerator: []string{"<meter>"}},
	{Key: "<AU>", Aliases: []string{"AU", "astronomical-unit"}, Scalar: 149597900000, Kind: "length", Numerator: []string{"<meter>"}},
	{Key: "<light-second>", Aliases: []string{"ls", "light-second"}, Scalar: 299792500, Kind: "length", Numerator: []string{"<meter>"}},
	{Key: "<light-minute>", Aliases: []string{"lmin", "light-minute"}, Scalar: 17987550000, Kind: "length", Numerator: []string{"<meter>"}},
	{Key: "<light-year>", Aliases: []string{"ly", "light-year"}, Scalar: 9460528000000000, Kind: "length", Numerator: []string{"<meter>"}},
	{Key: "<parsec>", Aliases: []string{"pc", "parsec", "parsecs"}, Scalar: 30856780000000000, Kind: "length", Numerator: []string{"<meter>"}},
	{Key: "<datamile>", Aliases: []string{"DM", "datamile"}, Scalar: 1828.8, Kind: "length", Numerator: []string{"<meter>"}},

	// mass
	{Key: "<kilogram>", Aliases: []string{"kg", "kilogram", "kilograms"}, Scalar: 1.0, Kind: "mass", Numerator: []string{"<kilogram>"}},
	{Key: "<AMU>", Aliases: []string{"u", "AMU", "amu"}, Scalar: 1.660538921e-27, Kind: "mass", Numerator: []string{"<kilogram>"}},
	{Key: "<dalton>", Aliases: []string{"Da", "Dalton", "Daltons", "dalton", "daltons"}, Scalar: 1.660538921e-27, Kind: "mass", Numerator: []string{"<kilogram>"}},
	{Key: "<slug>", Aliases: []string{"slug", "slugs"}, Scalar: 14.5939029, Kind: "mass", Numerator: []string{"<kilogram>"}},
	{Key: "<short-ton>", Aliases: []string{"tn", "ton", "short-ton"}, Scalar: 907.18474, Kind: "mass", Numerator: []string{"<kilogram>"}},
	{Key: "<metric-ton>", Aliases: []string{"tonne", "metric-ton"}, Scalar: 1000, Kind: "mass", Numerator: []string{"<kilogram>"}},
	{Key: "<carat>", Aliases: []string{"ct", "carat", "carats"}, Scalar: 0.0002, Kind: "mass", Numerator: []string{"<kilogram>"}},
	{Key: "<pound>", Aliases: []string{"lbs", "lb", "pound", "pounds", "#"}, Scalar: 0.45359237, Kind: "mass", Numerator: []string{"<kilogram>"}},
	{Key: "<ounce>", Aliases: []string{"oz", "ounce", "ounces"}, Scalar: 0.0283495231, Kind: "mass", Numerator: []string{"<kilogram>"}},
	{Key: "<gram>", Aliases: []string{"g", "gram", "grams", "gramme", "grammes"}, Scalar: 1e-3, Kind: "mass", Numerator: []string{"<kilogram>"}},
	{Key: "<grain>", Aliases: []string{"grain", "grains", "gr"}, Scalar: 6.479891e-5, Kind: "mass", Numerator: []string{"<kilogram>"}},
	{Key: "<dram>", Aliases: []string{"dram", "drams", "dr"}, Scalar: 0.0017718452, Kind: "mass", Numerator: []string{"<kilogram>"}},
	{Key: "<stone>", Aliases: []string{"stone", "stones", "st"}, Scalar: 6.35029318, Kind: "mass", Numerator: []string{"<kilogram>"}},

	// area
	{Key: "<hectare>", Aliases: []string{"hectare"}, Scalar: 10000, Kind: "area", Numerator: []string{"<meter>", "<meter>"}},
	{Key: "<acre>", Aliases: []string{"acre", "acres"}, Scalar: 4046.85642, Kind: "area", Numerator: []string{"<meter>", "<meter>"}},
	{Key: "<sqft>", Aliases: []string{"sqft"}, Scalar: 1, Kind: "area", Numerator: []string{"<foot>", "<foot>"}},

	// volume
	{Key: "<liter>", Aliases: []string{"l", "L", "liter", "liters", "litre", "litres"}, Scalar: 0.001, Kind: "volume", Numerator: []string{"<meter>", "<meter>", "<meter>"}},
	{Key: "<gallon>", Aliases: []string{"gal", "gallon", "gallons"}, Scalar: 0.0037854118, Kind: "volume", Numerator: []string{"<meter>", "<meter>", "<meter>"}},
	{Key: "<gallon-imp>", Aliases: []string{"galimp", "gallon-imp", "gallons-imp"}, Scalar: 0.0045460900, Kind: "volume", Numerator: []string{"<meter>", "<meter>", "<meter>"}},
	{Key: "<quart>", Aliases: []string{"qt", "quart", "quarts"}, Scalar: 0.00094635295, Kind: "volume", Numerator: []string{"<meter>", "<meter>", "<meter>"}},
	{Key: "<pint>", Aliases: []string{"pt", "pint", "pints"}, Scalar: 0.000473176475, Kind: "volume", Numerator: []string{"<meter>", "<meter>", "<meter>"}},
	{Key: "<pint-imp>", Aliases: []string{"ptimp", "pint-imp", "pints-imp"}, Scalar: 5.6826125e-4, Kind: "volume", Numerator: []string{"<meter>", "<meter>", "<meter>"}},
	{Key: "<cup>", Aliases: []string{"cu", "cup", "cups"}, Scalar: 0.000236588238, Kind: "volume", Numerator: []string{"<meter>", "<meter>", "<meter>"}},
	{Key: "<fluid-ounce>", Aliases: []string{"floz", "fluid-ounce", "fluid-ounces"}, Scalar: 2.95735297e-5, Kind: "volume", Numerator: []string{"<meter>", "<meter>", "<meter>"}},
	{Key: "<fluid-ounce-imp>", Aliases: []string{"flozimp", "floz-imp", "fluid-ounce-imp", "fluid-ounces-imp"}, Scalar: 2.84130625e-5, Kind: "volume", Numerator: []string{"<meter>", "<meter>", "<meter>"}},
	{Key: "<tablespoon>", Aliases: []string{"tb", "tbsp", "tbs", "tablespoon", "tablespoons"}, Scalar: 1.47867648e-5, Kind: "volume", Numerator: []string{"<meter>", "<meter>", "<meter>"}},
	{Key: "<teaspoon>", Aliases: []string{"tsp", "teaspoon", "teaspoons"}, Scalar: 4.92892161e-6, Kind: "volume", Numerator: []string{"<meter>", "<meter>", "<meter>"}},
	{Key: "<bushel>", Aliases: []string{"bu", "bsh", "bushel", "bushels"}, Scalar: 0.035239072, Kind: "volume", Numerator: []string{"<meter>", "<meter>", "<meter>"}},
	{Key: "<oilbarrel>", Aliases: []string{"bbl", "oilbarrel", "oilbarrels", "oil-barrel", "oil-barrels"}, Scalar: 0.158987294928, Kind: "volume", Numerator: []string{"<meter>", "<meter>", "<meter>"}},
	{Key: "<beerbarrel>", Aliases: []string{"bl", "bl-us", "beerbarrel", "beerbarrels", "beer-barrel", "beer-barrels"}, Scalar: 0.1173477658, Kind: "volume", Numerator: []string{"<meter>", "<meter>", "<meter>"}},
	{Key: "<beerbarrel-imp>", Aliases: []string{"blimp", "bl-imp", "beerbarrel-imp", "beerbarrels-imp", "beer-barrel-imp", "beer-barrels-imp"}, Scalar: 0.16365924, Kind: "volume", Numerator: []string{"<meter>", "<meter>", "<meter>"}},

	// speed
	{Key: "<kph>", Aliases: []string{"kph"}, Scalar: 0.277777778, Kind: "speed", Numerator: []string{"<meter>"}, Denominator: []string{"<second>"}},
	{Key: "<mph>", Aliases: []string{"mph"}, Scalar: 0.44704, Kind: "speed", Numerator: []string{"<meter>"}, Denominator: []string{"<second>"}},
	{Key: "<knot>", Aliases: []string{"kt", "kn", "kts", "knot", "knots"}, Scalar: 0.514444444, Kind: "speed", Numerator: []string{"<meter>"}, Denominator: []string{"<second>"}},
	{Key: "<fps>", Aliases: []string{"fps"}, Scalar: 0.3048, Kind: "speed", Numerator: []string{"<meter>"}, Denominator: []string{"<second>"}},

	// acceleration
	{Key: "<gee>", Aliases: []string{"gee"}, Scalar: 9.80665, Kind: "acceleration", Numerator: []string{"<meter>"}, Denominator: []string{"<second>", "<second>"}},
	{Key: "<Gal>", Aliases: []string{"Gal"}, Scalar: 1e-2, Kind: "acceleration", Numerator: []string{"<meter>"}, Denominator: []string{"<second>", "<second>"}},

	// temperature differences and absolute temperatures
	{Key: "<kelvin>", Aliases: []string{"degK", "kelvin"}, Scalar: 1.0, Kind: "temperature", Numerator: []string{"<kelvin>"}},
	{Key: "<celsius>", Aliases: []string{"degC", "celsius", "celsius", "centigrade"}, Scalar: 1.0, Kind: "temperature", Numerator: []string{"<kelvin>"}},
	{Key: "<fahrenheit>", Aliases: []string{"degF", "fahrenheit"}, Scalar: 5.0 / 9, Kind: "temperature", Numerator: []string{"<kelvin>"}},
	{Key: "<rankine>", Aliases: []string{"degR", "rankine"}, Scalar: 5.0 / 9, Kind: "temperature", Numerator: []string{"<kelvin>"}},
	{Key: "<temp-K>", Aliases: []string{"tempK", "temp-K"}, Scalar: 1.0, Kind: "temperature", Numerator: []string{"<temp-K>"}},
	{Key: "<temp-C>", Aliases: []string{"tempC", "temp-C"}, Scalar: 1.0, Kind: "temperature", Numerator: []string{"<temp-K>"}},
	{Key: "<temp-F>", Aliases: []string{"tempF", "temp-F"}, Scalar: 5.0 / 9, Kind: "temperature", Numerator: []string{"<temp-K>"}},
	{Key: "<temp-R>", Aliases: []string{"tempR", "temp-R"}, Scalar: 5.0 / 9, Kind: "temperature", Numerator: []string{"<temp-K>"}},

	// time
	{Key: "<second>", Aliases: []string{"s", "sec", "secs", "second", "seconds"}, Scalar: 1.0, Kind: "time", Numerator: []string{"<second>"}},
	{Key: "<minute>", Aliases: []string{"min", "mins", "minute", "minutes"}, Scalar: 60.0, Kind: "time", Numerator: []string{"<second>"}},
	{Key: "<hour>", Aliases: []string{"h", "hr", "hrs", "hour", "hours"}, Scalar: 3600.0, Kind: "time", Numerator: []string{"<second>"}},
	{Key: "<day>", Aliases: []string{"d", "day", "days"}, Scalar: 3600 * 24, Kind: "time", Numerator: []string{"<second>"}},
	{Key: "<week>", Aliases: []string{"wk", "week", "weeks"}, Scalar: 7 * 3600 * 24, Kind: "time", Numerator: []string{"<second>"}},
	{Key: "<fortnight>", Aliases: []string{"fortnight", "fortnights"}, Scalar: 1209600, Kind: "time", Numerator: []string{"<second>"}},
	{Key: "<year>", Aliases: []string{"y", "yr", "year", "years", "annum"}, Scalar: 31556926, Kind: "time", Numerator: []string{"<second>"}},
	{Key: "<decade>", Aliases: []string{"decade", "decades"}, Scalar: 315569260, Kind: "time", Numerator: []string{"<second>"}},
	{Key: "<century>", Aliases: []string{"century", "centuries"}, Scalar: 3155692600, Kind: "time", Numerator: []string{"<second>"}},

	// pressure
	{Key: "<pascal>", Aliases: []string{"Pa", "pascal", "Pascal"}, Scalar: 1.0, Kind: "pressure", Numerator: []string{"<kilogram>"}, Denominator: []string{"<meter>", "<second>", "<second>"}},
	{Key: "<bar>", Aliases: []string{"bar", "bars"}, Scalar: 100000, Kind: "pressure", Numerator: []string{"<kilogram>"}, Denominator: []string{"<meter>", "<second>", "<second>"}},
	{Key: "<mmHg>", Aliases: []string{"mmHg"}, Scalar: 133.322368, Kind: "pressure", Numerator: []string{"<kilogram>"}, Denominator: []string{"<meter>", "<second>", "<second>"}},
	{Key: "<inHg>", Aliases: []string{"inHg"}, Scalar: 3386.3881472, Kind: "pressure", Numerator: []string{"<kilogram>"}, Denominator: []string{"<meter>", "<second>", "<second>"}},
	{Key: "<torr>", Aliases: []string{"torr"}, Scalar: 133.322368, Kind: "pressure", Numerator: []string{"<kilogram>"}, Denominator: []string{"<meter>", "<second>", "<second>"}},
	{Key: "<atm>", Aliases: []string{"atm", "ATM", "atmosphere", "atmospheres"}, Scalar: 101325, Kind: "pressure", Numerator: []string{"<kilogram>"}, Denominator: []string{"<meter>", "<second>", "<second>"}},
	{Key: "<psi>", Aliases: []string{"psi"}, Scalar: 6894.76, Kind: "pressure", Numerator: []string{"<kilogram>"}, Denominator: []string{"<meter>", "<second>", "<second>"}},
	{Key: "<cmh2o>", Aliases: []string{"cmH2O", "cmh2o"}, Scalar: 98.0638, Kind: "pressure", Numerator: []string{"<kilogram>"}, Denominator: []string{"<meter>", "<second>", "<second>"}},
	{Key: "<inh2o>", Aliases: []string{"inH2O", "inh2o"}, Scalar: 249.082052, Kind: "pressure", Numerator: []string{"<kilogram>"}, Denominator: []string{"<meter>", "<second>", "<second>"}},

	// viscosity
	{Key: "<poise>", Aliases: []string{"P", "poise"}, Scalar: 0.1, Kind: "viscosity", Numerator: []string{"<kilogram>"}, Denominator: []string{"<meter>", "<second>"}},
	{Key: "<stokes>", Aliases: []string{"St", "stokes"}, Scalar: 1e-4, Kind: "viscosity", Numerator: []string{"<meter>", "<meter>"}, Denominator: []string{"<second>"}},

	// substance
	{Key: "<mole>", Aliases: []string{"mol", "mole"}, Scalar: 1.0, Kind: "substance", Numerator: []string{"<mole>"}},

	// concentration
	{Key: "<molar>", Aliases: []string{"M", "molar"}, Scalar: 1000, Kind: "concentration", Numerator: []string{"<mole>"}, Denominator: []string{"<meter>", "<meter>", "<meter>"}},
	{Key: "<wtpercent>", Aliases: []string{"wt%", "wtpercent"}, Scalar: 10, Kind: "concentration", Numerator: []string{"<kilogram>"}, Denominator: []string{"<meter>", "<meter>", "<meter>"}},

	// activity
	{Key: "<katal>", Aliases: []string{"kat", "katal", "Katal"}, Scalar: 1.0, Kind: "activity", Numerator: []string{"<mole>"}, Denominator: []string{"<second>"}},
	{Key: "<unit>", Aliases: []string{"U", "enzUnit", "unit"}, Scalar: 16.667e-16, Kind: "activity", Numerator: []string{"<mole>"}, Denominator: []string{"<second>"}},

	// capacitance
	{Key: "<farad>", Aliases: []string{"F", "farad", "Farad"}, Scalar: 1.0, Kind: "capacitance", Numerator: []string{"<second>", "<second>", "<second>", "<second>", "<ampere>", "<ampere>"}, Denominator: []string{"<meter>", "<meter>", "<kilogram>"}},

	// charge
	{Key: "<coulomb>", Aliases: []string{"C", "coulomb", "Coulomb"}, Scalar: 1.0, Kind: "charge", Numerator: []string{"<ampere>", "<second>"}},
	{Key: "<Ah>", Aliases: []string{"Ah"}, Scalar: 3600, Kind: "charge", Numerator: []string{"<ampere>", "<second>"}},

	// current
	{Key: "<ampere>", Aliases: []string{"A", "Ampere", "ampere", "amp", "amps"}, Scalar: 1.0, Kind: "current", Numerator: []string{"<ampere>"}},

	// conductance
	{Key: "<siemens>", Aliases: []string{"S", "Siemens", "siemens"}, Scalar: 1.0, Kind: "conductance", Numerator: []string{"<second>", "<second>", "<second>", "<ampere>", "<ampere>"}, Denominator: []string{"<kilogram>", "<meter>", "<meter>"}},

	// inductance
	{Key: "<henry>", Aliases: []string{"H", "Henry", "henry"}, Scalar: 1.0, Kind: "inductance", Numerator: []string{"<meter>", "<meter>", "<kilogram>"}, Denominator: []string{"<second>", "<second>", "<ampere>", "<ampere>"}},

	// potential
	{Key: "<volt>", Aliases: []string{"V", "Volt", "volt", "volts"}, Scalar: 1.0, Kind: "potential", Numerator: []string{"<meter>", "<meter>", "<kilogram>"}, Denominator: []string{"<second>", "<second>", "<second>", "<ampere>"}},

	// resistance
	{Key: "<ohm>", Aliases: []string{"Ohm", "ohm", "\u03a9", "\u2126"}, Scalar: 1.0, Kind: "resistance", Numerator: []string{"<meter>", "<meter>", "<kilogram>"}, Denominator: []string{"<second>", "<second>", "<second>", "<ampere>", "<ampere>"}},

	// magnetism
	{Key: "<weber>", Aliases: []string{"Wb", "weber", "webers"}, Scalar: 1.0, Kind: "magnetism", Numerator: []string{"<meter>", "<meter>", "<kilogram>"}, Denominator: []string{"<second>", "<second>", "<ampere>"}},
	{Key: "<tesla>", Aliases: []string{"T", "tesla", "teslas"}, Scalar: 1.0, Kind: "magnetism", Numerator: []string{"<kilogram>"}, Denominator: []string{"<second>", "<second>", "<ampere>"}},
	{Key: "<gauss>", Aliases: []string{"G", "gauss"}, Scalar: 1e-4, Kind: "magnetism", Numerator: []string{"<kilogram>"}, Denominator: []string{"<second>", "<second>", "<ampere>"}},
	{Key: "<maxwell>", Aliases: []string{"Mx", "maxwell", "maxwells"}, Scalar: 1e-8, Kind: "magnetism", Numerator: []string{"<meter>", "<meter>", "<kilogram>"}, Denominator: []string{"<second>", "<second>", "<ampere>"}},
	{Key: "<oersted>", Aliases: []string{"Oe", "oersted", "oersteds"}, Scalar: 250.0 / math.Pi, Kind: "magnetism", Numerator: []string{"<ampere>"}, Denominator: []string{"<meter>"}},

	// energy
	{Key: "<joule>", Aliases: []string{"J", "joule", "Joule", "joules"}, Scalar: 1.0, Kind: "energy", Numerator: []string{"<meter>", "<meter>", "<kilogram>"}, Denominator: []string{"<second>", "<second>"}},
	{Key: "<erg>", Aliases: []string{"erg", "ergs"}, Scalar: 1e-7, Kind: "energy", Numerator: []string{"<meter>", "<meter>", "<kilogram>"}, Denominator: []string{"<second>", "<second>"}},
	{Key: "<btu>", Aliases: []string{"BTU", "btu", "BTUs"}, Scalar: 1055.056, Kind: "energy", Numerator: []string{"<meter>", "<meter>", "<kilogram>"}, Denominator: []string{"<second>", "<second>"}},
	{Key: "<calorie>", Aliases: []string{"cal", "calorie", "calories"}, Scalar: 4.18400, Kind: "energy", Numerator: []string{"<meter>", "<meter>", "<kilogram>"}, Denominator: []string{"<second>", "<second>"}},
	{Key: "<Calorie>", Aliases: []string{"Cal", "Calorie", "Calories"}, Scalar: 4184.00, Kind: "energy", Numerator: []string{"<meter>", "<meter>", "<kilogram>"}, Denominator: []string{"<second>", "<second>"}},
	{Key: "<therm-US>", Aliases: []string{"th", "therm", "therms", "Therm", "therm-US"}, Scalar: 105480400, Kind: "energy", Numerator: []string{"<meter>", "<meter>", "<kilogram>"}, Denominator: []string{"<second>", "<second>"}},
	{Key: "<Wh>", Aliases: []string{"Wh"}, Scalar: 3600, Kind: "energy", Numerator: []string{"<meter>", "<meter>", "<kilogram>"}, Denominator: []string{"<second>", "<second>"}},

	// force
	{Key: "<newton>", Aliases: []string{"N", "Newton", "newton"}, Scalar: 1.0, Kind: "force", Numerator: []string{"<kilogram>", "<meter>"}, Denominator: []string{"<second>", "<second>"}},
	{Key: "<dyne>", Aliases: []string{"dyn", "dyne"}, Scalar: 1e-5, Kind: "force", Numerator: []string{"<kilogram>", "<meter>"}, Denominator: []string{"<second>", "<second>"}},
	{Key: "<pound-force>", Aliases: []string{"lbf", "pound-force"}, Scalar: 4.448222, Kind: "force", Numerator: []string{"<kilogram>", "<meter>"}, Denominator: []string{"<second>", "<second>"}},

	// frequency
	{Key: "<hertz>", Aliases: []string{"Hz", "hertz", "Hertz"}, Scalar: 1.0, Kind: "frequency", Numerator: []string{"<1>"}, Denominator: []string{"<second>"}},

	// angle
	{Key: "<radian>", Aliases: []string{"rad", "radian", "radians"}, Scalar: 1.0, Kind: "angle", Numerator: []string{"<radian>"}},
	{Key: "<degree>", Aliases: []string{"deg", "degree", "degrees"}, Scalar: math.Pi / 180.0, Kind: "angle", Numerator: []string{"<radian>"}},
	{Key: "<gradian>", Aliases: []string{"gon", "grad", "gradian", "grads"}, Scalar: math.Pi / 200.0, Kind: "angle", Numerator: []string{"<radian>"}},
	{Key: "<steradian>", Aliases: []string{"sr", "steradian", "steradians"}, Scalar: 1.0, Kind: "solid_angle", Numerator: []string{"<steradian>"}},

	// rotation
	{Key: "<rotation>", Aliases: []string{"rotation"}, Scalar: 2.0 * math.Pi, Kind: "angle", Numerator: []string{"<radian>"}},
	{Key: "<rpm>", Aliases: []string{"rpm"}, Scalar: 2.0 * math.Pi / 60.0, Kind: "angular_velocity", Numerator: []string{"<radian>"}, Denominator: []string{"<second>"}},

	// information
	{Key: "<byte>", Aliases: []string{"B", "byte", "bytes"}, Scalar: 1.0, Kind: "information", Numerator: []string{"<byte>"}},
	{Key: "<bit>", Aliases: []string{"b", "bit", "bits"}, Scalar: 0.125, Kind: "information", Numerator: []string{"<byte>"}},

	// information rate
	{Key: "<Bps>", Aliases: []string{"Bps"}, Scalar: 1.0, Kind: "information_rate", Numerator: []string{"<byte>"}, Denominator: []string{"<second>"}},
	{Key: "<bps>", Aliases: []string{"bps"}, Scalar: 0.125, Kind: "information_rate", Numerator: []string{"<byte>"}, Denominator: []string{"<second>"}},

	// currency
	{Key: "<dollar>", Aliases: []string{"USD", "dollar"}, Scalar: 1.0, Kind: "currency", Numerator: []string{"<dollar>"}},
	{Key: "<cents>", Aliases: []string{"cents"}, Scalar: 0.01, Kind: "currency", Numerator: []string{"<dollar>"}},

	// luminosity
	{Key: "<candela>", Aliases: []string{"cd", "candela"}, Scalar: 1.0, Kind: "luminosity", Numerator: []string{"<candela>"}},
	{Key: "<lumen>", Aliases: []string{"lm", "lumen"}, Scalar: 1.0, Kind: "luminous_power", Numerator: []string{"<candela>", "<steradian>"}},
	{Key: "<lux>", Aliases: []string{"lux"}, Scalar: 1.0, Kind: "illuminance", Numerator: []string{"<candela>", "<steradian>"}, Denominator: []string{"<meter>", "<meter>"}},

	// power
	{Key: "<watt>", Aliases: []string{"W", "watt", "watts"}, Scalar: 1.0, Kind: "power", Numerator: []string{"<kilogram>", "<meter>", "<meter>"}, Denominator: []string{"<second>", "<second>", "<second>"}},
	{Key: "<volt-ampere>", Aliases: []string{"VA", "volt-ampere"}, Scalar: 1.0, Kind: "power", Numerator: []string{"<kilogram>", "<meter>", "<meter>"}, Denominator: []string{"<second>", "<second>", "<second>"}},
	{Key: "<volt-ampere-reactive>", Aliases: []string{"var", "Var", "VAr", "VAR", "volt-ampere-reactive"}, Scalar: 1.0, Kind: "power", Numerator: []string{"<kilogram>", "<meter>", "<meter>"}, Denominator: []string{"<second>", "<second>", "<second>"}},
	{Key: "<horsepower>", Aliases: []string{"hp", "horsepower"}, Scalar: 745.699872, Kind: "power", Numerator: []string{"<kilogram>", "<meter>", "<meter>"}, Denominator: []string{"<second>", "<second>", "<second>"}},

	// radiation
	{Key: "<gray>", Aliases: []string{"Gy", "gray", "grays"}, Scalar: 1.0, Kind: "radiation", Numerator: []string{"<meter>", "<meter>"}, Denominator: []string{"<second>", "<second>"}},
	{Key: "<roentgen>", Aliases: []string{"R", "roentgen"}, Scalar: 0.009330, Kind: "radiation", Numerator: []string{"<meter>", "<meter>"}, Denominator: []string{"<second>", "<second>"}},
	{Key: "<sievert>", Aliases: []string{"Sv", "sievert", "sieverts"}, Scalar: 1.0, Kind: "radiation", Numerator: []string{"<meter>", "<meter>"}, Denominator: []string{"<second>", "<second>"}},
	{Key: "<becquerel>", Aliases: []string{"Bq", "becquerel", "becquerels"}, Scalar: 1.0, Kind: "radiation", Numerator: []string{"<1>"}, Denominator: []string{"<second>"}},
	{Key: "<curie>", Aliases: []string{"Ci", "curie", "curies"}, Scalar: 3.7e10, Kind: "radiation", Numerator: []string{"<1>"}, Denominator: []string{"<second>"}},

	// rate
	{Key: "<cpm>", Aliases: []string{"cpm"}, Scalar: 1.0 / 60.0, Kind: "rate", Numerator: []string{"<count>"}, Denominator: []string{"<second>"}},
	{Key: "<dpm>", Aliases: []string{"dpm"}, Scalar: 1.0 / 60.0, Kind: "rate", Numerator: []string{"<count>"}, Denominator: []string{"<second>"}},
	{Key: "<bpm>", Aliases: []string{"bpm"}, Scalar: 1.0 / 60.0, Kind: "rate", Numerator: []string{"<count>"}, Denominator: []string{"<second>"}},

	// resolution
	{Key: "<dot>", Aliases: []string{"dot", "dots"}, Scalar: 1, Kind: "resolution", Numerator: []string{"<each>"}},
	{Key: "<pixel>", Aliases: []string{"pixel", "px"}, Scalar: 1, Kind: "resolution", Numerator: []string{"<each>"}},
	{Key: "<ppi>", Aliases: []string{"ppi"}, Scalar: 1, Kind: "resolution", Numerator: []string{"<pixel>"}, Denominator: []string{"<inch>"}},
	{Key: "<dpi>", Aliases: []string{"dpi"}, Scalar: 1, Kind: "typography", Numerator: []string{"<dot>"}, Denominator: []string{"<inch>"}},

	// counting and dimensionless ratios
	{Key: "<cell>", Aliases: []string{"cells", "cell"}, Scalar: 1, Kind: "counting", Numerator: []string{"<each>"}},
	{Key: "<each>", Aliases: []string{"each"}, Scalar: 1.0, Kind: "counting", Numerator: []string{"<each>"}},
	{Key: "<count>", Aliases: []string{"count"}, Scalar: 1.0, Kind: "counting", Numerator: []string{"<each>"}},
	{Key: "<base-pair>", Aliases: []string{"bp", "base-pair"}, Scalar: 1.0, Kind: "counting", Numerator: []string{"<each>"}},
	{Key: "<nucleotide>", Aliases: []string{"nt", "nucleotide"}, Scalar: 1.0, Kind: "counting", Numerator: []string{"<each>"}},
	{Key: "<molecule>", Aliases: []string{"molecule", "molecules"}, Scalar: 1.0, Kind: "counting", Numerator: []string{"<1>"}},
	{Key: "<dozen>", Aliases: []string{"doz", "dz", "dozen"}, Scalar: 12.0, Kind: "prefix_only", Numerator: []string{"<each>"}},
	{Key: "<percent>", Aliases: []string{"%", "percent"}, Scalar: 0.01, Kind: "prefix_only", Numerator: []string{"<1>"}},
	{Key: "<ppm>", Aliases: []string{"ppm"}, Scalar: 1e-6, Kind: "prefix_only", Numerator: []string{"<1>"}},
	{Key: "<ppt>", Aliases: []string{"ppt"}, Scalar: 1e-9, Kind: "prefix_only", Numerator: []string{"<1>"}},
	// gross is a dozen dozens; its scalar is relative to that decomposition.
	{Key: "<gross>", Aliases: []string{"gr", "gross"}, Scalar: 1, Kind: "prefix_only", Numerator: []string{"<dozen>", "<dozen>"}},
	{Key: "<decibel>", Aliases: []string{"dB", "decibel", "decibels"}, Scalar: 1.0, Kind: "logarithmic", Numerator: []string{"<decibel>"}},
}

// Definitions returns a copy of the built-in table.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	for i, d := range definitions {
		out[i] = d.clone()
	}
	return out
}

func (d Definition) clone() Definition {
	d.Aliases = append([]string(nil), d.Aliases...)
	d.Numerator = append([]string(nil), d.Numerator...)
	d.Denominator = append([]string(nil), d.Denominator...)
	return d
}
