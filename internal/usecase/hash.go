package usecase

// charSum returns the sum of the character codes of s. It is the seed for
// every derived entity: the same identifier always hashes to the same value,
// which is what makes theater, showtime and seat generation reproducible.
func charSum(s string) int {
	total := 0
	for _, r := range s {
		total += int(r)
	}
	return total
}
