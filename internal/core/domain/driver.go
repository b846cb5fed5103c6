package domain

import (
	"sort"
	"strings"
)

// initialRoster is written to the drivers document on first access.
var initialRoster = []string{
	"AEWE.A", "ANDERSON J", "ANDREW BOROK", "ANDREW DEPKIN", "ANDREW PEPENA", "ANDY JOHN",
	"ANTON KAIA", "ANTON PAI", "BOB PITO", "BON YOBON", "BRUCE NOEL", "CHARLES PUPU",
	"CHARLIE POPHIAN", "DANIEL NANI", "DAVID FENAM", "DAVID KIAP", "DAVID PAKAT", "DAVIS D",
	"DUSTON", "EDDIE DIAU", "EDWARD G", "EDWIN YAMAN", "EVELYN ASEKIM", "FELIX AKA",
	"FELIX DOMINICUS", "FELIX M", "GEORGE KANDON", "GINSA GEHMAT", "GREANP", "HENRY HEREBE",
	"HENRY SAPIEN", "HEWE", "IAN WALO", "ILA MAPE", "JACKIE GRAKOI", "JAMES MAMEA", "JAMES WORIN",
	"JESS M", "JOE KOROPON", "JOHN NAKDAUN", "JOHN PASKA", "JOHN SINON", "JOHN TONDOPAN",
	"JUNIOR STANDLY", "KENEDY J", "KEVIN AIHI", "KII IKI", "LEMANG KANAWI", "LEMECK",
	"LINUS NINESIENG", "LUKIE LAKAPIN", "MAILY BILL", "MARE RUACH", "MARK KILIPSEP",
	"MARTIN NIMOL", "MARTIN P", "MARTIN SAIPO", "MARTIN T", "MATHEW JOHN", "MATUS DAUYAI",
	"MILOK L", "NIXON KOROKA", "PETER BUSINA", "PHILIP KATALLY", "PIUS KEYIKEN",
	"RAISA SAMBATH", "RODNEY", "RODY NAROK", "ROGER KRELO", "RUBEN.M", "SAMOA SIMOI",
	"SAMSON PUAKA", "SELSON IRAP", "SEM", "SIRIEL D", "SIRIEL MEMBA", "STANLEY BISAKIM",
	"TAU RENAGI", "THURSTON", "TIPEY HAWAN", "TURUQ TETAC", "VINCENT SAPARIT", "WAKS",
	"WILLIAM ROMRUNDI", "WILLIE JOE", "WINGELA",
}

// InitialRoster returns the built-in driver list, sorted.
func InitialRoster() []string {
	return SortRoster(initialRoster)
}

// SortRoster returns a sorted copy of names. Ordering is byte-wise, so
// upper-case names sort before lower-case ones.
func SortRoster(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	sort.Strings(out)
	return out
}

// NormalizeDriverName trims the name and rejects blank input.
func NormalizeDriverName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrEmptyDriverName
	}
	return trimmed, nil
}

// RosterContains reports whether name matches an entry ignoring case.
func RosterContains(roster []string, name string) bool {
	for _, d := range roster {
		if strings.EqualFold(d, name) {
			return true
		}
	}
	return false
}
