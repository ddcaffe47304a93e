package blog

import "golang.org/x/text/language"

func samplePublications() []Publication {
	return []Publication{
		{AuthorID: 1, Date: "17/01/2018", Title: "First steps", Category: "Technology", Description: "Getting started"},
		{AuthorID: 2, Date: "20/03/2018", Title: "Market update", Category: "Economy", Description: "Quarterly numbers"},
		{AuthorID: 1, Date: "12/04/2018", Title: "Going further", Category: "Science", Description: "Next steps"},
	}
}

func yearOfPublications() []Publication {
	return []Publication{
		{AuthorID: 1, Date: "17/01/2018", Title: "January", Category: "Technology"},
		{AuthorID: 2, Date: "20/03/2018", Title: "March", Category: "Economy"},
		{AuthorID: 3, Date: "12/04/2018", Title: "April", Category: "Science"},
		{AuthorID: 1, Date: "22/08/2018", Title: "August", Category: "Sports"},
		{AuthorID: 2, Date: "05/06/2018", Title: "June", Category: "Health"},
		{AuthorID: 3, Date: "30/07/2018", Title: "July", Category: "Culture"},
	}
}

func newTestSorter() *Sorter {
	return NewSorter(language.English)
}

func titles(publications []Publication) []string {
	result := make([]string, len(publications))
	for i, publication := range publications {
		result[i] = publication.Title
	}
	return result
}

func intPtr(i int) *int {
	return &i
}
