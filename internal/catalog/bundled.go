package catalog

// Bundled returns the catalog compiled into the binary.
func Bundled() *Catalog {
	c, err := New(Document{
		Candidates:   bundledCandidates,
		Commissions:  bundledCommissions,
		Institutions: bundledInstitutions,
		News:         bundledNews,
	})
	if err != nil {
		panic("bundled catalog: " + err.Error())
	}
	return c
}
