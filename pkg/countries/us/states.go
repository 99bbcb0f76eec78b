package us

// stateAbbrevs and stateNames enumerate the US region1 vocabulary: the
// fifty states, DC, and the inhabited territories, by two-letter code and
// by full name. Grounded on the USPS Pub 28 Appendix C2 state table
// retrieved for this task (my-eq-go-usps parser-lexicon.go's initStates).
const stateAbbrevs = `(?:` +
	`AL|AK|AZ|AR|CA|CO|CT|DE|FL|GA|HI|ID|IL|IN|IA|KS|KY|LA|ME|MD|` +
	`MA|MI|MN|MS|MO|MT|NE|NV|NH|NJ|NM|NY|NC|ND|OH|OK|OR|PA|RI|SC|` +
	`SD|TN|TX|UT|VT|VA|WA|WV|WI|WY|DC|AS|GU|MP|PR|VI` +
	`)`

const stateNames = `(?:` +
	`Alabama|Alaska|Arizona|Arkansas|California|Colorado|Connecticut|` +
	`Delaware|Florida|Georgia|Hawaii|Idaho|Illinois|Indiana|Iowa|Kansas|` +
	`Kentucky|Louisiana|Maine|Maryland|Massachusetts|Michigan|Minnesota|` +
	`Mississippi|Missouri|Montana|Nebraska|Nevada|New\s+Hampshire|` +
	`New\s+Jersey|New\s+Mexico|New\s+York|North\s+Carolina|North\s+Dakota|` +
	`Ohio|Oklahoma|Oregon|Pennsylvania|Rhode\s+Island|South\s+Carolina|` +
	`South\s+Dakota|Tennessee|Texas|Utah|Vermont|Virginia|Washington|` +
	`West\s+Virginia|Wisconsin|Wyoming|District\s+of\s+Columbia|` +
	`American\s+Samoa|Guam|Northern\s+Mariana\s+Islands|Puerto\s+Rico|` +
	`Virgin\s+Islands` +
	`)`
