package fifa

const (
	flagUnknownTeam = "🏴"
	flagDefault     = "🏳️"
	teamTBD         = "TBD"
)

// teamFlags covers World Cup 2026 teams under both Spanish and English names.
var teamFlags = map[string]string{
	// CONCACAF
	"México": "🇲🇽", "EE. UU.": "🇺🇸", "USA": "🇺🇸", "Canadá": "🇨🇦", "Canada": "🇨🇦",
	"Costa Rica": "🇨🇷", "Jamaica": "🇯🇲", "Panamá": "🇵🇦", "Panama": "🇵🇦",
	"Honduras": "🇭🇳", "Haití": "🇭🇹", "Haiti": "🇭🇹", "Curazao": "🇨🇼",

	// CONMEBOL
	"Argentina": "🇦🇷", "Brasil": "🇧🇷", "Brazil": "🇧🇷", "Uruguay": "🇺🇾",
	"Colombia": "🇨🇴", "Ecuador": "🇪🇨", "Paraguay": "🇵🇾", "Chile": "🇨🇱",
	"Perú": "🇵🇪", "Peru": "🇵🇪", "Bolivia": "🇧🇴", "Venezuela": "🇻🇪",

	// UEFA
	"España": "🇪🇸", "Spain": "🇪🇸", "Alemania": "🇩🇪", "Germany": "🇩🇪",
	"Francia": "🇫🇷", "France": "🇫🇷", "Inglaterra": "🏴󠁧󠁢󠁥󠁮󠁧󠁿", "England": "🏴󠁧󠁢󠁥󠁮󠁧󠁿",
	"Portugal": "🇵🇹", "Países Bajos": "🇳🇱", "Netherlands": "🇳🇱",
	"Bélgica": "🇧🇪", "Belgium": "🇧🇪", "Italia": "🇮🇹", "Italy": "🇮🇹",
	"Croacia": "🇭🇷", "Croatia": "🇭🇷", "Suiza": "🇨🇭", "Switzerland": "🇨🇭",
	"Dinamarca": "🇩🇰", "Denmark": "🇩🇰", "Suecia": "🇸🇪", "Sweden": "🇸🇪",
	"Noruega": "🇳🇴", "Norway": "🇳🇴", "Polonia": "🇵🇱", "Poland": "🇵🇱",
	"Ucrania": "🇺🇦", "Ukraine": "🇺🇦", "Serbia": "🇷🇸", "Austria": "🇦🇹",
	"República Checa": "🇨🇿", "Czech Republic": "🇨🇿",
	"Escocia": "🏴󠁧󠁢󠁳󠁣󠁴󠁿", "Scotland": "🏴󠁧󠁢󠁳󠁣󠁴󠁿", "Gales": "🏴󠁧󠁢󠁷󠁬󠁳󠁿", "Wales": "🏴󠁧󠁢󠁷󠁬󠁳󠁿",
	"Irlanda": "🇮🇪", "Ireland": "🇮🇪", "Turquía": "🇹🇷", "Turkey": "🇹🇷",
	"Rumania": "🇷🇴", "Romania": "🇷🇴", "Grecia": "🇬🇷", "Greece": "🇬🇷",

	// AFC
	"Japón": "🇯🇵", "Japan": "🇯🇵", "República de Corea": "🇰🇷", "South Korea": "🇰🇷", "Korea": "🇰🇷",
	"Australia": "🇦🇺", "Irán": "🇮🇷", "Iran": "🇮🇷",
	"Arabia Saudí": "🇸🇦", "Saudi Arabia": "🇸🇦", "Catar": "🇶🇦", "Qatar": "🇶🇦",
	"Irak": "🇮🇶", "Iraq": "🇮🇶", "Emiratos Árabes Unidos": "🇦🇪", "UAE": "🇦🇪",
	"Uzbekistán": "🇺🇿", "Uzbekistan": "🇺🇿", "Jordania": "🇯🇴", "Jordan": "🇯🇴",
	"China": "🇨🇳", "Tailandia": "🇹🇭", "Thailand": "🇹🇭",

	// CAF
	"Senegal": "🇸🇳", "Marruecos": "🇲🇦", "Morocco": "🇲🇦",
	"Túnez": "🇹🇳", "Tunisia": "🇹🇳", "Argelia": "🇩🇿", "Algeria": "🇩🇿",
	"Egipto": "🇪🇬", "Egypt": "🇪🇬", "Nigeria": "🇳🇬", "Ghana": "🇬🇭",
	"Camerún": "🇨🇲", "Cameroon": "🇨🇲", "Costa de Marfil": "🇨🇮", "Ivory Coast": "🇨🇮",
	"Malí": "🇲🇱", "Mali": "🇲🇱", "Burkina Faso": "🇧🇫",
	"Sudáfrica": "🇿🇦", "South Africa": "🇿🇦",
	"Islas de Cabo Verde": "🇨🇻", "Cape Verde": "🇨🇻",

	// OFC
	"Nueva Zelanda": "🇳🇿", "New Zealand": "🇳🇿",
}

// TeamFlag returns the flag glyph for a team name. Placeholder teams get a
// black flag and unknown names a white one.
func TeamFlag(team string) string {
	if team == "" || team == teamTBD {
		return flagUnknownTeam
	}
	if flag, ok := teamFlags[team]; ok {
		return flag
	}
	return flagDefault
}
