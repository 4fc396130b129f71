package matching

import (
	"fmt"

	"kundali-api/internal/ports/ephemeris"
)

// Los ocho kootas. Convención de índices: signo lunar 0..11 (Aries=0),
// nakshatra 0..26 (Ashwini=0). "bride"/"groom" siguen el orden clásico
// del Ashtakoota; los kootas direccionales (Varna, Vashya) no son simétricos.

// Varna (1): jerarquía espiritual. Compatible si el varna del novio
// no queda por debajo del de la novia.
func varnaKoota(brideSign, groomSign int) KootaScore {
	bv := varnaBySign[brideSign]
	gv := varnaBySign[groomSign]

	var pts float64
	if gv >= bv {
		pts = 1
	}
	return KootaScore{
		Name:        "Varna",
		Points:      pts,
		Max:         1,
		Description: fmt.Sprintf("bride %s, groom %s", varnaNames[bv], varnaNames[gv]),
	}
}

// Vashya (2): afinidad de dominancia entre los grupos de los signos lunares.
func vashyaKoota(brideSign, groomSign int) KootaScore {
	bg := vashyaBySign[brideSign]
	gg := vashyaBySign[groomSign]

	return KootaScore{
		Name:        "Vashya",
		Points:      vashyaScore[gg][bg],
		Max:         2,
		Description: fmt.Sprintf("groups %d and %d", gg, bg),
	}
}

// Tara (3): conteo de nakshatras entre ambos, en las dos direcciones.
// Un conteo que cae en 3, 5 o 7 (mod 9) es inauspicioso y aporta 0;
// el resto aporta 3. El puntaje final es el promedio de ambas direcciones.
func taraKoota(brideNak, groomNak int) KootaScore {
	fwd := taraHalf(brideNak, groomNak)
	bwd := taraHalf(groomNak, brideNak)

	return KootaScore{
		Name:        "Tara",
		Points:      (fwd + bwd) / 2,
		Max:         3,
		Description: fmt.Sprintf("counts %d and %d", taraCount(brideNak, groomNak), taraCount(groomNak, brideNak)),
	}
}

func taraCount(from, to int) int {
	return ((to-from)%27+27)%27 + 1
}

func taraHalf(from, to int) float64 {
	switch taraCount(from, to) % 9 {
	case 3, 5, 7:
		return 0
	default:
		return 3
	}
}

// Yoni (4): afinidad entre los animales simbólicos de ambas nakshatras.
func yoniKoota(brideNak, groomNak int) KootaScore {
	ba := yoniByNakshatra[brideNak]
	ga := yoniByNakshatra[groomNak]

	var pts float64
	p := pair(ba, ga)
	switch {
	case ba == ga:
		pts = 4
	default:
		if _, ok := yoniEnemies[p]; ok {
			pts = 0
		} else if _, ok := yoniUnfriendly[p]; ok {
			pts = 1
		} else if _, ok := yoniFriendly[p]; ok {
			pts = 3
		} else {
			pts = 2
		}
	}

	return KootaScore{
		Name:        "Yoni",
		Points:      pts,
		Max:         4,
		Description: fmt.Sprintf("bride %s, groom %s", yoniNames[ba], yoniNames[ga]),
	}
}

// Graha Maitri (5): amistad entre los regentes de los signos lunares.
func maitriKoota(brideSign, groomSign int) KootaScore {
	bl := signLord[brideSign]
	gl := signLord[groomSign]

	pts := maitriPoints(bl, gl)
	return KootaScore{
		Name:        "Graha Maitri",
		Points:      pts,
		Max:         5,
		Description: fmt.Sprintf("lords %s and %s", bl, gl),
	}
}

func maitriPoints(a, b ephemeris.Body) float64 {
	if a == b {
		return 5
	}

	ra := relation(a, b) // cómo ve a a b
	rb := relation(b, a)

	switch {
	case ra == relFriend && rb == relFriend:
		return 5
	case (ra == relFriend && rb == relNeutral) || (ra == relNeutral && rb == relFriend):
		return 4
	case ra == relNeutral && rb == relNeutral:
		return 3
	case (ra == relFriend && rb == relEnemy) || (ra == relEnemy && rb == relFriend):
		return 1
	case (ra == relNeutral && rb == relEnemy) || (ra == relEnemy && rb == relNeutral):
		return 0.5
	default: // enemigos mutuos
		return 0
	}
}

type rel int

const (
	relNeutral rel = iota
	relFriend
	relEnemy
)

func relation(from, to ephemeris.Body) rel {
	if _, ok := planetFriends[from][to]; ok {
		return relFriend
	}
	if _, ok := planetEnemies[from][to]; ok {
		return relEnemy
	}
	return relNeutral
}

// Gana (6): temperamento por nakshatra.
func ganaKoota(brideNak, groomNak int) KootaScore {
	bg := ganaByNakshatra[brideNak]
	gg := ganaByNakshatra[groomNak]

	var pts float64
	switch {
	case bg == gg:
		pts = 6
	case bg == ganaDeva && gg == ganaManushya, bg == ganaManushya && gg == ganaDeva:
		pts = 5
	case bg == ganaManushya && gg == ganaRakshasa, bg == ganaRakshasa && gg == ganaManushya:
		pts = 3
	default: // Deva vs Rakshasa
		pts = 1
	}

	return KootaScore{
		Name:        "Gana",
		Points:      pts,
		Max:         6,
		Description: fmt.Sprintf("bride %s, groom %s", ganaNames[bg], ganaNames[gg]),
	}
}

// Bhakoot (7): distancia entre los signos lunares. Las parejas 2/12,
// 5/9 y 6/8 anulan el koota; cualquier otra distancia da los 7 puntos.
func bhakootKoota(brideSign, groomSign int) KootaScore {
	fwd := ((groomSign-brideSign)%12+12)%12 + 1
	bwd := ((brideSign-groomSign)%12+12)%12 + 1

	var pts float64 = 7
	switch fwd {
	case 2, 12, 5, 9, 6, 8:
		pts = 0
	}

	return KootaScore{
		Name:        "Bhakoot",
		Points:      pts,
		Max:         7,
		Description: fmt.Sprintf("distances %d and %d", fwd, bwd),
	}
}

// Nadi (8): el koota de mayor peso. Misma nadi => 0, distinta => 8.
func nadiKoota(brideNak, groomNak int) KootaScore {
	bn := nadiByNakshatra[brideNak]
	gn := nadiByNakshatra[groomNak]

	var pts float64
	if bn != gn {
		pts = 8
	}
	return KootaScore{
		Name:        "Nadi",
		Points:      pts,
		Max:         8,
		Description: fmt.Sprintf("bride %s, groom %s", nadiNames[bn], nadiNames[gn]),
	}
}
