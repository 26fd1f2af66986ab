package extraction

// ExtractOffer runs all field extractors over one text blob and assembles a
// candidate offer. The second return value is the looks-like-offer
// diagnostic; it never gates assembly.
//
// Returns (nil, hint) when no field parses to a positive value: that text
// holds no offer. Producers that poll may retry on a later blob of the same
// interaction.
func ExtractOffer(text string) (*CandidateOffer, bool) {
	text = CleanText(text)
	hint := LooksLikeOffer(text)

	offer := CandidateOffer{
		FareCOP: ExtractFare(text),
		Minutes: ExtractMinutes(text),
	}
	offer.PickupKm, offer.TripKm = ExtractDistances(text)

	if offer.isZero() {
		return nil, hint
	}
	return &offer, hint
}
