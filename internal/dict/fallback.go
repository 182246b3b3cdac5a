package dict

// fallbackWords keeps the game playable when every configured source
// is unreachable.
var fallbackWords = []string{
	"ACE", "AGE", "AID", "AIM", "AIR", "AND", "ANT", "APE", "ARM", "ART",
	"BAG", "BAR", "BAT", "BED", "BEE", "BIG", "BIT", "BOX", "BUS", "CAB",
	"CAN", "CAP", "CAR", "CAT", "COT", "CUP", "CUT", "DAY", "DEN", "DOG",
	"DOT", "EAR", "EAT", "EGG", "END", "EYE", "FAN", "FAR", "FIT", "FOX",
	"GAS", "GEM", "GET", "HAT", "HEN", "HIT", "ICE", "INK", "JAR", "JET",
	"KEY", "KID", "LAP", "LEG", "LET", "LOG", "MAP", "MAT", "MEN", "NET",
	"NEW", "NOD", "NOT", "NOW", "NUT", "OAK", "OIL", "OLD", "ONE", "OWL",
	"PAN", "PEN", "PET", "PIG", "PIN", "POT", "RAT", "RED", "RUN", "SEA",
	"SIT", "SKY", "SUN", "TAG", "TAP", "TEA", "TEN", "TIN", "TOP", "TOY",
	"BEAR", "BIRD", "BLUE", "BOAT", "CAKE", "CARD", "CAST", "COIN", "CORN",
	"DARK", "DEER", "DOOR", "DUCK", "DUST", "EAST", "FARM", "FISH", "FIRE",
	"GAME", "GATE", "GOLD", "HAND", "HILL", "JEST", "KING", "LAKE", "LAMP",
	"LEAF", "LION", "MOON", "NEST", "NOTE", "PARK", "RAIN", "RING", "ROAD",
	"ROCK", "ROSE", "SAND", "SHIP", "SNOW", "SONG", "STAR", "TENT", "TIME",
	"TREE", "WAVE", "WIND", "WOLF", "WOOD", "WORD", "YARD",
	"APPLE", "BEACH", "BREAD", "CHAIR", "CLOUD", "DANCE", "EAGLE", "FIELD",
	"GRASS", "HORSE", "HOUSE", "JESTS", "LIGHT", "MOUSE", "OCEAN", "PLANT",
	"RIVER", "SHEEP", "STONE", "TABLE", "TIGER", "TRAIN", "WATER", "WHALE",
	"BASKET", "CANDLE", "FLOWER", "FOREST", "GARDEN", "ISLAND", "JESTED",
	"MONKEY", "ORANGE", "PENCIL", "RABBIT", "SILVER", "TEMPLE", "WINDOW",
	"JESTING", "LANTERN", "MORNING", "PICTURE", "THUNDER", "VILLAGE",
}

func Fallback() *Dictionary {
	return New(fallbackWords)
}
