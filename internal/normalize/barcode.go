package normalize

import "regexp"

var barcodeDigits = regexp.MustCompile(`^\d{8,13}$`)

// ValidateBarcode reports whether code is a valid EAN-8, UPC-A or EAN-13
// barcode. The check digit is the complement mod 10 of a weighted sum over
// the leading digits; the 1/3 weight alternation depends on the parity of
// the total length.
func ValidateBarcode(code string) bool {
	if !barcodeDigits.MatchString(code) {
		return false
	}
	switch len(code) {
	case 8, 12, 13:
	default:
		return false
	}

	checkDigit := int(code[len(code)-1] - '0')
	checksum := 0
	for i := 0; i < len(code)-1; i++ {
		digit := int(code[i] - '0')
		if len(code)%2 == 1 {
			if i%2 == 1 {
				digit *= 3
			}
		} else {
			if i%2 == 0 {
				digit *= 3
			}
		}
		checksum += digit
	}

	check := checksum % 10
	if check != 0 {
		check = 10 - check
	}
	return check == checkDigit
}
