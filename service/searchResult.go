package service

// searchResponse models the part of the UniRef REST search results we read
type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	Name      string     `json:"name"`
	Organisms []organism `json:"organisms"`
}

type organism struct {
	ScientificName string `json:"scientificName"`
}
