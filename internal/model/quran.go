package model

// Surah is one chapter in the surah index.
type Surah struct {
	Number                 int    `json:"number"`
	Name                   string `json:"name"`
	EnglishName            string `json:"englishName"`
	EnglishNameTranslation string `json:"englishNameTranslation"`
	NumberOfAyahs          int    `json:"numberOfAyahs"`
	RevelationType         string `json:"revelationType"`
}

// Ayah is a single verse with its recitation audio URL.
type Ayah struct {
	Number        int    `json:"number"` // absolute verse number
	Text          string `json:"text"`
	NumberInSurah int    `json:"numberInSurah"`
	Juz           int    `json:"juz"`
	Audio         string `json:"audio"`
}

// FullSurah is a chapter with its verses.
type FullSurah struct {
	Surah
	Ayahs []Ayah `json:"ayahs"`
}
