package match

import "fmt"

// MapNames resolves the short map and series-format codes HLTV uses on
// the results listing to display names. The bo* entries keep a trailing
// space so map names can be appended directly after the label.
var MapNames = map[string]string{
	"mrg":  "Mirage",
	"trn":  "Train",
	"ovp":  "Overpass",
	"inf":  "Inferno",
	"cch":  "Cache",
	"cbl":  "Cobblestone",
	"nuke": "Nuke",
	"bo2":  "Best-of-two ",
	"bo3":  "Best-of-three ",
	"bo5":  "Best-of-five ",
	"-":    "Default win",
}

// UnknownMapError reports a maps code missing from the lookup table,
// which usually means HLTV changed its listing markup.
type UnknownMapError struct {
	Code string
}

func (e *UnknownMapError) Error() string {
	return fmt.Sprintf("unknown map abbreviation %q", e.Code)
}

// ResolveMap looks up a map or series-format code in MapNames.
func ResolveMap(code string) (string, error) {
	name, ok := MapNames[code]
	if !ok {
		return "", &UnknownMapError{Code: code}
	}
	return name, nil
}
