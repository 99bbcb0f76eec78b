// Package us is the US token library (component C1): the regex
// vocabulary Tokens feeds to grammar.Build to compile US full_address
// matching. Grounded in USPS Publication 28 Appendix C (street suffixes,
// directionals, secondary designators, state names) via the lexicon tables
// retrieved for this task, and in the token-level acceptance/rejection
// corpus carried over from the pyap reference suite.
package us

import "github.com/parseaddr/pkg/grammar"

// Tokens returns the compiled US token library.
func Tokens() grammar.Tokens {
	return grammar.Tokens{
		StreetNumber:   streetNumber,
		PreDirection:   direction,
		PostDirection:  direction,
		StreetNameWord: streetNameWord,
		StreetType:     streetType,
		Occupancy:      occupancy,
		Floor:          floor,
		Building:       building,
		MailStop:       mailStop,
		PoBox:          poBox,
		City:           city,
		Region1:        region1,
		PostalCode:     postalCode,
		Country:        country,
	}
}

// --- numerals -----------------------------------------------------------

const zeroToNine = `(?:zero|one|two|three|four|five|six|seven|eight|nine)`

// tensOrTeens covers both the multiples of ten pyap calls ten_to_ninety and
// the teens (eleven..nineteen), which the reference grammar's own
// categories (zero_to_nine, ten_to_ninety, hundred, thousand) can't
// otherwise express; see SPEC_FULL.md §6.
const tensOrTeens = `(?:ten|eleven|twelve|thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen|twenty|thirty|forty|fifty|sixty|seventy|eighty|ninety)`

const hundredWord = `hundred`
const thousandWord = `thousand`
const andWord = `and`

// thousandsChunk, hundredsChunk and tensOnesChunk are the three
// independently-optional pieces of a spelled-out street number; at least
// one of them (tensOnesChunk) must be present.
const thousandsChunk = `(?:` + zeroToNine + `\s+` + thousandWord + `\s+(?:` + andWord + `\s+)?)`
const hundredsChunk = `(?:` + zeroToNine + `\s+` + hundredWord + `\s+(?:` + andWord + `\s+)?)`
const tensOnesChunk = `(?:` + tensOrTeens + `\s+` + zeroToNine + `|` + tensOrTeens + `|` + zeroToNine + `)`

const spelledStreetNumber = thousandsChunk + `?` + hundredsChunk + `?` + tensOnesChunk

// digitStreetNumber accepts 1-5 digits, optionally followed by a letter
// directly attached or joined with a hyphen (5214F, 155-B). A letter
// separated from the digits by whitespace is deliberately NOT part of the
// number — that's a post-direction or unit designator, matched by its own
// token a word later.
const digitStreetNumber = `\d{1,5}(?:-?[A-Za-z])?`

const streetNumber = `(?:` + digitStreetNumber + `|` + spelledStreetNumber + `)`

// --- directionals ---------------------------------------------------------

const direction = `(?:` +
	`N(?:orth)?\.?|S(?:outh)?\.?|E(?:ast)?\.?|W(?:est)?\.?|` +
	`N(?:orth)?E(?:ast)?\.?|N(?:orth)?W(?:est)?\.?|` +
	`S(?:outh)?E(?:ast)?\.?|S(?:outh)?W(?:est)?\.?` +
	`)`

// --- street name -----------------------------------------------------------

// streetNameWord is a single word of a street name: a letter-led token of
// at least two characters, allowing embedded digits, apostrophes (straight
// or typographic) and hyphens, or a bare number used as a name word (e.g.
// the "123" in "Avenue 123").
const streetNameWord = `(?:[A-Za-z][A-Za-z0-9'’\-]+|\d+)`

// --- street type -----------------------------------------------------------

// streetTypeSuffix is the USPS Pub 28 Appendix C1 suffix vocabulary. It
// was audited against spec.md's Testable Properties table and pyap's own
// street_type_extended test list, which name several entries (BAY,
// Freeway, Loop, Estate, Manor, Cut Off) that a smaller, common-suffix-only
// list omits.
const streetTypeSuffix = `(?:` +
	`Allee?y?|Ally|Aly|` +
	`Anx|Annex|Annx|` +
	`Arc|Arcade|` +
	`Av(?:e(?:n(?:ue|u)?)?)?|Avn(?:ue)?|` +
	`Bayoo?u?|Bay|` +
	`Bch|Beach|` +
	`Bnd|Bend|` +
	`Blfs|Bluffs|Blf|Bluff|` +
	`Bot|Bottm|Bottom|` +
	`Blvd|Boul(?:v|evard)?|` +
	`Brnch|Branch|Br|` +
	`Brdge|Bridge|Brg|` +
	`Brks|Brooks|Brk|Brook|` +
	`Byp|Bypas|Bypa(?:ss)?|` +
	`Cp|Camp|Cmp|` +
	`Cyn|Canyon|Cnyn|` +
	`Cpe|Cape|` +
	`Causway|Causeway|Cswy|` +
	`Ctrs|Centers|Ctr|Cent(?:er|r|re)?|` +
	`Cirs|Circles|Cir(?:c(?:le|l)?)?|Crcle?|` +
	`Clfs|Cliffs|Clf|Cliff|` +
	`Clb|Club|` +
	`Cmn|Common|Commons|` +
	`Cors|Corners|Cor|Corner|` +
	`Cres|Crescent|Cr|` +
	`Crst|Crest|` +
	`Xing|Crssng|Crossing|` +
	`Xrds|Crossroads|Xrd|Crossroad|` +
	`Curv|Curve|` +
	`Cts|Courts|Ct|Court|Crt|` +
	`Cvs|Coves|Cv|Cove|` +
	`Cut\s*Off|Cutoff|` +
	`Dl|Dale|` +
	`Dm|Dam|` +
	`Dv|Dvd|Div|Divide|` +
	`Drs|Drives|Dr(?:ive|iv)?|Drv|` +
	`Ests|Estates|Est|Estate|` +
	`Expy|Exp(?:ress(?:way)?|r)?|Expw|` +
	`Exts|Extensions|Ext|Extn|Extension|` +
	`Fls|Falls|` +
	`Flds|Fields|Fld|Field|` +
	`Flts|Flats|Flt|Flat|` +
	`Frds|Fords|Frd|Ford|` +
	`Frst|Forest|` +
	`Frgs|Forges|Frg|Forge|` +
	`Frks|Forks|Frk|Fork|` +
	`Ft|Fort|` +
	`Fwy|Frwy|Freeway|` +
	`Gdns|Gardens|Gdn|Garden|` +
	`Gtwy|Gtway|Gateway|` +
	`Glns|Glens|Gln|Glen|` +
	`Grns|Greens|Grn|Green|` +
	`Grvs|Groves|Grv|Grove|` +
	`Hbrs|Harbors|Hbr|Harbor|` +
	`Hvn|Haven|` +
	`Hwy|High(?:wa)?y|Hiwy|` +
	`Hls|Hills|Hl|Hill|` +
	`Holw|Hollows|Hollow|` +
	`Inlt|Inlet|` +
	`Iss|Islands|Is|Island|` +
	`Jcts|Junctions|Jct|Jction|Junction|` +
	`Kys|Keys|Ky|Key|` +
	`Knls|Knolls|Knl|Knoll|` +
	`Lks|Lakes|Lk|Lake|` +
	`Land|` +
	`Ln|Lanes?|` +
	`Lndng|Landing|Lndg|` +
	`Lgts|Lights|Lgt|Light|` +
	`Lf|Loaf|` +
	`Lcks|Locks|Lck|Lock|` +
	`Ldge|Lodge|Ldg|` +
	`Loops|Loop|` +
	`Mall|` +
	`Mnrs|Manors|Mnr|Manor|` +
	`Mdws|Meadows|Mdw|Meadow|` +
	`Mls|Mills|Ml|Mill|` +
	`Mssn|Mission|Msn|` +
	`Mtwy|Motorway|` +
	`Mtns|Mountains|Mtn|Mount(?:ain)?|Mt|` +
	`Nck|Neck|` +
	`Orchrd|Orchard|Orch|` +
	`Ovl|Oval|` +
	`Opas|Overpass|` +
	`Pky|Pkwy|Parks|Park(?:way|wy)?|` +
	`Pass|` +
	`Psge|Passage|` +
	`Paths|Path|` +
	`Pnes|Pines|Pne|Pine|` +
	`Pl(?:ace)?|` +
	`Plns|Plains|Pln|Plain|` +
	`Plz|Plaza|Plza|` +
	`Pts|Points|Pt|Point|` +
	`Prts|Ports|Prt|Port|` +
	`Pr|Prairie|` +
	`Radl|Radial|Rad|` +
	`Ranches|Rnchs|Rnch|Ranch|` +
	`Rpds|Rapids|Rpd|Rapid|` +
	`Rst|Rest|` +
	`Rds|Roads|Rd|Road|` +
	`Rdgs|Ridges|Rdge|Rdg|Ridge|` +
	`Riv|River|Rvr|` +
	`Rte|Route|` +
	`Row|` +
	`Rue|` +
	`Run|` +
	`Shls|Shoals|Shl|Shoal|` +
	`Shrs|Shores|Shr|Shore|` +
	`Skwy|Skyway|` +
	`Spgs|Springs|Spg|Spring|` +
	`Spur|` +
	`Sqs|Squares|Sq(?:uare|r|re|u)?|` +
	`Sts|Streets|St(?:r(?:eet|t)?)?|Steet|` +
	`Stra|Strav|Stravenue|` +
	`Statn|Station|Sta|` +
	`Streme|Stream|Strm|` +
	`Sumit|Sumitt|Summit|Smt|` +
	`Ter(?:race|r)?|` +
	`Trce|Trace|` +
	`Trfy|Trafficway|` +
	`Trl?|Trail(?:s)?|Trk|` +
	`Trwy|Throughway|` +
	`Tunel|Tunl|Tunnel|` +
	`Tpke|Turnpike|Trnpk|Turnpk|` +
	`Upas|Underpass|` +
	`Uns|Unions|Un|Union|` +
	`Vlys|Valleys|Vly|Valley|` +
	`Via|Viadct|Viaduct|` +
	`Vws|Views|Vw|View|` +
	`Vlgs|Villages|Vlg|Village|` +
	`Vl|Ville|` +
	`Vist|Vis|Vista|` +
	`Walks|Walk|` +
	`Wls|Wells|Wl|Well|` +
	`Way` +
	`)\.?`

// extendedRouteType is the interstate/highway/route composite forms pyap's
// grammar calls out separately from the suffix list (Interstate 95, I- 35,
// I-35 Service Road, US Highway, State Route 9, Street route 5).
const extendedRouteType = `(?:` +
	`Interstate(?:\s+\d{1,3})?|I-?\s*\d{1,3}(?:\s+Service\s+Road)?|` +
	`U\.?S\.?\s*Highway|U\.?S\.?\s*Hwy|` +
	`(?:State\s+)?(?:Route|Rte\.?|Hwy|Highway|Road|Rd)\s*\d{1,4}|` +
	`Street\s+[Rr]oute\s*\d{1,4}` +
	`)`

const streetType = `(?:` + streetTypeSuffix + `|` + extendedRouteType + `)`

// --- occupancy / floor / building / mail stop -------------------------------

const unitID = `[A-Za-z0-9\-#]+`

// The leading '#' is escaped: grammar.Build compiles in verbose mode, where
// a bare '#' starts a comment that runs to the end of the pattern.
const occupancy = `(?:` +
	`\#\s*` + unitID + `|` +
	`(?:Apt|Apartment|Aptmt|Suite|Ste|Suit|Unit|Rm|Room|Spc|Space|Lot|Trlr|Trailer|Bsmt|Basement|Ofc|Office|Ph|Penthouse|Dept|Department|Rear|Side|Front|Frnt|Lbby|Lobby|Slip|Key|Stop|Pier|Upper|Uppr|Lowr|Lower|Hngr|Hanger|Bay|Site|Pl(?:ace)?)\.?\s*` + unitID +
	`)`

const floor = `(?:Floor|Fl(?:r|oor)?\.?|\d{1,3}(?:st|nd|rd|th)\s+Fl(?:oor|r)?\.?)\s*` + unitID + `?`

const building = `(?:Bldg|Building|Bld)\.?\s+` + unitID

const mailStop = `(?:Mail\s*Stop|MS|M/S)\.?\s*` + unitID

// --- PO box ------------------------------------------------------------------

const poBox = `(?:P\.?\s*O\.?\s*Box|Post\s+Office\s+Box|PO\s*Box)\.?\s*\d+`

// --- city / region / postal code --------------------------------------------

// city is loose by design — pyap's own grammar doesn't validate city names
// against a gazetteer (§1 non-goal: no geocoding). One to four capitalized
// words is a reasonable shape without over-constraining real place names
// ("Winston-Salem", "St. Louis", "Ho-Ho-Kus"). The (?-i:...) group keeps
// the capital-letter requirement even though the composed pattern is
// compiled case-insensitively.
const city = `(?-i:[A-Z][A-Za-z'.\-]*(?:\s+[A-Z][A-Za-z'.\-]*){0,3})`

const region1 = `(?:` + stateNames + `|` + stateAbbrevs + `)`

const postalCode = `\d{5}(?:-\d{4})?`

const country = `(?:U\.?S\.?A?\.?|United\s+States(?:\s+of\s+America)?)`
