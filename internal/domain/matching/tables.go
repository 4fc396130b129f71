package matching

import "kundali-api/internal/ports/ephemeris"

// Tablas clásicas del Ashtakoota. Todas se indexan por signo (0..11,
// Aries=0) o por nakshatra (0..26, Ashwini=0). Read-only.

// ---- Varna ----

type varna int

const (
	varnaShudra varna = iota + 1
	varnaVaishya
	varnaKshatriya
	varnaBrahmin
)

var varnaNames = map[varna]string{
	varnaShudra:    "Shudra",
	varnaVaishya:   "Vaishya",
	varnaKshatriya: "Kshatriya",
	varnaBrahmin:   "Brahmin",
}

// Varna por signo lunar: agua => Brahmin, fuego => Kshatriya,
// tierra => Vaishya, aire => Shudra.
var varnaBySign = [12]varna{
	varnaKshatriya, // Aries
	varnaVaishya,   // Taurus
	varnaShudra,    // Gemini
	varnaBrahmin,   // Cancer
	varnaKshatriya, // Leo
	varnaVaishya,   // Virgo
	varnaShudra,    // Libra
	varnaBrahmin,   // Scorpio
	varnaKshatriya, // Sagittarius
	varnaVaishya,   // Capricorn
	varnaShudra,    // Aquarius
	varnaBrahmin,   // Pisces
}

// ---- Vashya ----

type vashyaGroup int

const (
	vashyaChatushpada vashyaGroup = iota // cuadrúpedo
	vashyaManava                        // humano
	vashyaJalachara                     // acuático
	vashyaVanachara                     // salvaje
	vashyaKeeta                         // insecto
)

var vashyaBySign = [12]vashyaGroup{
	vashyaChatushpada, // Aries
	vashyaChatushpada, // Taurus
	vashyaManava,      // Gemini
	vashyaJalachara,   // Cancer
	vashyaVanachara,   // Leo
	vashyaManava,      // Virgo
	vashyaManava,      // Libra
	vashyaKeeta,       // Scorpio
	vashyaManava,      // Sagittarius
	vashyaJalachara,   // Capricorn
	vashyaManava,      // Aquarius
	vashyaJalachara,   // Pisces
}

// vashyaScore[groom][bride], en puntos 0..2.
var vashyaScore = [5][5]float64{
	//                    chatushpada manava jalachara vanachara keeta
	vashyaChatushpada: {2, 1, 1, 0, 1},
	vashyaManava:      {1, 2, 0.5, 0, 1},
	vashyaJalachara:   {1, 0.5, 2, 0, 1},
	vashyaVanachara:   {0, 0, 0, 2, 0},
	vashyaKeeta:       {1, 1, 1, 0, 2},
}

// ---- Yoni ----

type yoniAnimal int

const (
	yoniHorse yoniAnimal = iota
	yoniElephant
	yoniSheep
	yoniSerpent
	yoniDog
	yoniCat
	yoniRat
	yoniCow
	yoniBuffalo
	yoniTiger
	yoniDeer
	yoniMonkey
	yoniMongoose
	yoniLion
)

var yoniNames = map[yoniAnimal]string{
	yoniHorse:    "Horse",
	yoniElephant: "Elephant",
	yoniSheep:    "Sheep",
	yoniSerpent:  "Serpent",
	yoniDog:      "Dog",
	yoniCat:      "Cat",
	yoniRat:      "Rat",
	yoniCow:      "Cow",
	yoniBuffalo:  "Buffalo",
	yoniTiger:    "Tiger",
	yoniDeer:     "Deer",
	yoniMonkey:   "Monkey",
	yoniMongoose: "Mongoose",
	yoniLion:     "Lion",
}

var yoniByNakshatra = [27]yoniAnimal{
	yoniHorse,    // Ashwini
	yoniElephant, // Bharani
	yoniSheep,    // Krittika
	yoniSerpent,  // Rohini
	yoniSerpent,  // Mrigashirsha
	yoniDog,      // Ardra
	yoniCat,      // Punarvasu
	yoniSheep,    // Pushya
	yoniCat,      // Ashlesha
	yoniRat,      // Magha
	yoniRat,      // Purva Phalguni
	yoniCow,      // Uttara Phalguni
	yoniBuffalo,  // Hasta
	yoniTiger,    // Chitra
	yoniBuffalo,  // Swati
	yoniTiger,    // Vishakha
	yoniDeer,     // Anuradha
	yoniDeer,     // Jyeshtha
	yoniDog,      // Mula
	yoniMonkey,   // Purva Ashadha
	yoniMongoose, // Uttara Ashadha
	yoniMonkey,   // Shravana
	yoniLion,     // Dhanishta
	yoniHorse,    // Shatabhisha
	yoniLion,     // Purva Bhadrapada
	yoniCow,      // Uttara Bhadrapada
	yoniElephant, // Revati
}

// Parejas enemigas declaradas (0 puntos). El resto de la matriz se
// deriva: mismo animal 4, resto 2, salvo pares "hostiles menores" con 1.
var yoniEnemies = map[[2]yoniAnimal]struct{}{
	pair(yoniCat, yoniRat):          {},
	pair(yoniDog, yoniDeer):         {},
	pair(yoniLion, yoniElephant):    {},
	pair(yoniSerpent, yoniMongoose): {},
	pair(yoniMonkey, yoniSheep):     {},
	pair(yoniTiger, yoniCow):        {},
	pair(yoniHorse, yoniBuffalo):    {},
}

// Pares con afinidad baja pero no hostil (1 punto).
var yoniUnfriendly = map[[2]yoniAnimal]struct{}{
	pair(yoniHorse, yoniLion):      {},
	pair(yoniHorse, yoniTiger):     {},
	pair(yoniElephant, yoniTiger):  {},
	pair(yoniSheep, yoniDog):       {},
	pair(yoniSerpent, yoniDog):     {},
	pair(yoniCat, yoniDog):         {},
	pair(yoniRat, yoniMongoose):    {},
	pair(yoniCow, yoniLion):        {},
	pair(yoniBuffalo, yoniTiger):   {},
	pair(yoniDeer, yoniLion):       {},
	pair(yoniMonkey, yoniMongoose): {},
}

// Pares con buena afinidad (3 puntos).
var yoniFriendly = map[[2]yoniAnimal]struct{}{
	pair(yoniHorse, yoniElephant): {},
	pair(yoniHorse, yoniSheep):    {},
	pair(yoniHorse, yoniDeer):     {},
	pair(yoniElephant, yoniSheep): {},
	pair(yoniElephant, yoniCow):   {},
	pair(yoniSheep, yoniCow):      {},
	pair(yoniSerpent, yoniCat):    {},
	pair(yoniCat, yoniSheep):      {},
	pair(yoniCow, yoniBuffalo):    {},
	pair(yoniDeer, yoniMonkey):    {},
	pair(yoniDog, yoniMongoose):   {},
	pair(yoniTiger, yoniLion):     {},
}

func pair(a, b yoniAnimal) [2]yoniAnimal {
	if a > b {
		a, b = b, a
	}
	return [2]yoniAnimal{a, b}
}

// ---- Gana ----

type gana int

const (
	ganaDeva gana = iota
	ganaManushya
	ganaRakshasa
)

var ganaNames = map[gana]string{
	ganaDeva:     "Deva",
	ganaManushya: "Manushya",
	ganaRakshasa: "Rakshasa",
}

var ganaByNakshatra = [27]gana{
	ganaDeva,     // Ashwini
	ganaManushya, // Bharani
	ganaRakshasa, // Krittika
	ganaManushya, // Rohini
	ganaDeva,     // Mrigashirsha
	ganaManushya, // Ardra
	ganaDeva,     // Punarvasu
	ganaDeva,     // Pushya
	ganaRakshasa, // Ashlesha
	ganaRakshasa, // Magha
	ganaManushya, // Purva Phalguni
	ganaManushya, // Uttara Phalguni
	ganaDeva,     // Hasta
	ganaRakshasa, // Chitra
	ganaDeva,     // Swati
	ganaRakshasa, // Vishakha
	ganaDeva,     // Anuradha
	ganaRakshasa, // Jyeshtha
	ganaRakshasa, // Mula
	ganaManushya, // Purva Ashadha
	ganaManushya, // Uttara Ashadha
	ganaDeva,     // Shravana
	ganaRakshasa, // Dhanishta
	ganaRakshasa, // Shatabhisha
	ganaManushya, // Purva Bhadrapada
	ganaManushya, // Uttara Bhadrapada
	ganaDeva,     // Revati
}

// ---- Nadi ----

type nadi int

const (
	nadiAadi nadi = iota
	nadiMadhya
	nadiAntya
)

var nadiNames = map[nadi]string{
	nadiAadi:   "Aadi",
	nadiMadhya: "Madhya",
	nadiAntya:  "Antya",
}

var nadiByNakshatra = [27]nadi{
	nadiAadi,   // Ashwini
	nadiMadhya, // Bharani
	nadiAntya,  // Krittika
	nadiAntya,  // Rohini
	nadiMadhya, // Mrigashirsha
	nadiAadi,   // Ardra
	nadiAadi,   // Punarvasu
	nadiMadhya, // Pushya
	nadiAntya,  // Ashlesha
	nadiAntya,  // Magha
	nadiMadhya, // Purva Phalguni
	nadiAadi,   // Uttara Phalguni
	nadiAadi,   // Hasta
	nadiMadhya, // Chitra
	nadiAntya,  // Swati
	nadiAntya,  // Vishakha
	nadiMadhya, // Anuradha
	nadiAadi,   // Jyeshtha
	nadiAadi,   // Mula
	nadiMadhya, // Purva Ashadha
	nadiAntya,  // Uttara Ashadha
	nadiAadi,   // Shravana
	nadiMadhya, // Dhanishta
	nadiAntya,  // Shatabhisha
	nadiAadi,   // Purva Bhadrapada
	nadiMadhya, // Uttara Bhadrapada
	nadiAntya,  // Revati
}

// ---- Graha Maitri ----

var signLord = [12]ephemeris.Body{
	ephemeris.Mars,    // Aries
	ephemeris.Venus,   // Taurus
	ephemeris.Mercury, // Gemini
	ephemeris.Moon,    // Cancer
	ephemeris.Sun,     // Leo
	ephemeris.Mercury, // Virgo
	ephemeris.Venus,   // Libra
	ephemeris.Mars,    // Scorpio
	ephemeris.Jupiter, // Sagittarius
	ephemeris.Saturn,  // Capricorn
	ephemeris.Saturn,  // Aquarius
	ephemeris.Jupiter, // Pisces
}

var planetFriends = map[ephemeris.Body]map[ephemeris.Body]struct{}{
	ephemeris.Sun:     set(ephemeris.Moon, ephemeris.Mars, ephemeris.Jupiter),
	ephemeris.Moon:    set(ephemeris.Sun, ephemeris.Mercury),
	ephemeris.Mars:    set(ephemeris.Sun, ephemeris.Moon, ephemeris.Jupiter),
	ephemeris.Mercury: set(ephemeris.Sun, ephemeris.Venus),
	ephemeris.Jupiter: set(ephemeris.Sun, ephemeris.Moon, ephemeris.Mars),
	ephemeris.Venus:   set(ephemeris.Mercury, ephemeris.Saturn),
	ephemeris.Saturn:  set(ephemeris.Mercury, ephemeris.Venus),
}

var planetEnemies = map[ephemeris.Body]map[ephemeris.Body]struct{}{
	ephemeris.Sun:     set(ephemeris.Venus, ephemeris.Saturn),
	ephemeris.Moon:    set(),
	ephemeris.Mars:    set(ephemeris.Mercury),
	ephemeris.Mercury: set(ephemeris.Moon),
	ephemeris.Jupiter: set(ephemeris.Mercury, ephemeris.Venus),
	ephemeris.Venus:   set(ephemeris.Sun, ephemeris.Moon),
	ephemeris.Saturn:  set(ephemeris.Sun, ephemeris.Moon, ephemeris.Mars),
}

func set(bodies ...ephemeris.Body) map[ephemeris.Body]struct{} {
	out := make(map[ephemeris.Body]struct{}, len(bodies))
	for _, b := range bodies {
		out[b] = struct{}{}
	}
	return out
}
