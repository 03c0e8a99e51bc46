package names

// Name is one of the 99 names with its transliteration and short meaning.
type Name struct {
	ID              int    `json:"id"`
	Arabic          string `json:"ar"`
	Transliteration string `json:"en"`
	Meaning         string `json:"meaning"`
}

// All is the complete reference table, in traditional order.
var All = []Name{
	{ID: 1, Arabic: "الله", Transliteration: "Allah", Meaning: "لفظ الجلالة، الجامع لصفات الألوهية"},
	{ID: 2, Arabic: "الرحمن", Transliteration: "Ar-Rahman", Meaning: "ذو الرحمة الواسعة التي وسعت كل شيء"},
	{ID: 3, Arabic: "الرحيم", Transliteration: "Ar-Raheem", Meaning: "الواصل رحمته إلى عباده المؤمنين"},
	{ID: 4, Arabic: "الملك", Transliteration: "Al-Malik", Meaning: "المالك لجميع الأشياء، المتصرف فيها بلا ممانع"},
	{ID: 5, Arabic: "القدوس", Transliteration: "Al-Quddus", Meaning: "المنزه عن كل نقص وعيب"},
	{ID: 6, Arabic: "السلام", Transliteration: "As-Salam", Meaning: "السالم من النقص، والمانح للسلامة"},
	{ID: 7, Arabic: "المؤمن", Transliteration: "Al-Mu'min", Meaning: "المصدق لرسله، والذي يأمن عباده من عذابه"},
	{ID: 8, Arabic: "المهيمن", Transliteration: "Al-Muhaymin", Meaning: "الرقيب الحافظ لكل شيء"},
	{ID: 9, Arabic: "العزيز", Transliteration: "Al-Aziz", Meaning: "القوي الغالب الذي لا يُغلب"},
	{ID: 10, Arabic: "الجبار", Transliteration: "Al-Jabbar", Meaning: "الذي يجبر الكسير، ويقهر الجبابرة"},
	{ID: 11, Arabic: "المتكبر", Transliteration: "Al-Mutakabbir", Meaning: "المنفرد بالعظمة والكبرياء"},
	{ID: 12, Arabic: "الخالق", Transliteration: "Al-Khaliq", Meaning: "الموجد للأشياء من العدم"},
	{ID: 13, Arabic: "البارئ", Transliteration: "Al-Bari", Meaning: "الذي خلق الخلق لا عن مثال سابق"},
	{ID: 14, Arabic: "المصور", Transliteration: "Al-Musawwir", Meaning: "الذي صور المخلوقات في أحسن صورة"},
	{ID: 15, Arabic: "الغفار", Transliteration: "Al-Ghaffar", Meaning: "الكثير المغفرة لذنوب عباده"},
	{ID: 16, Arabic: "القهار", Transliteration: "Al-Qahhar", Meaning: "الذي خضعت له الرقاب وذلت له الجبابرة"},
	{ID: 17, Arabic: "الوهاب", Transliteration: "Al-Wahhab", Meaning: "الكثير العطايا بلا عوض"},
	{ID: 18, Arabic: "الرزاق", Transliteration: "Ar-Razzaq", Meaning: "المتكفل بأرزاق جميع الخلائق"},
	{ID: 19, Arabic: "الفتاح", Transliteration: "Al-Fattah", Meaning: "الذي يفتح أبواب الرحمة والرزق لعباده"},
	{ID: 20, Arabic: "العليم", Transliteration: "Al-Alim", Meaning: "الذي أحاط علمه بكل شيء"},
	{ID: 21, Arabic: "القابض", Transliteration: "Al-Qabid", Meaning: "الذي يقبض الأرزاق والأرواح بحكمته"},
	{ID: 22, Arabic: "الباسط", Transliteration: "Al-Basit", Meaning: "الذي يبسط الرزق لمن يشاء بجوده"},
	{ID: 23, Arabic: "الخافض", Transliteration: "Al-Khafid", Meaning: "الذي يخفض الجبارين ويذل الطغاة"},
	{ID: 24, Arabic: "الرافع", Transliteration: "Ar-Rafi", Meaning: "الذي يرفع أولياءه درجات"},
	{ID: 25, Arabic: "المعز", Transliteration: "Al-Mu'izz", Meaning: "الذي يهب العزة لمن يشاء"},
	{ID: 26, Arabic: "المذل", Transliteration: "Al-Mudhill", Meaning: "الذي يذل من يشاء من أعدائه"},
	{ID: 27, Arabic: "السميع", Transliteration: "As-Sami", Meaning: "الذي لا يخفى عليه شيء من المسموعات"},
	{ID: 28, Arabic: "البصير", Transliteration: "Al-Basir", Meaning: "الذي يشاهد جميع المبصرات"},
	{ID: 29, Arabic: "الحكم", Transliteration: "Al-Hakam", Meaning: "الذي يفصل بين الحق والباطل"},
	{ID: 30, Arabic: "العدل", Transliteration: "Al-Adl", Meaning: "المنزه عن الظلم والجور"},
	{ID: 31, Arabic: "اللطيف", Transliteration: "Al-Latif", Meaning: "الرفيق بعباده، العالم بدقائق الأمور"},
	{ID: 32, Arabic: "الخبير", Transliteration: "Al-Khabir", Meaning: "العالم ببواطن الأمور وحقائقها"},
	{ID: 33, Arabic: "الحليم", Transliteration: "Al-Halim", Meaning: "الذي لا يعاجل بالعقوبة"},
	{ID: 34, Arabic: "العظيم", Transliteration: "Al-Azim", Meaning: "الذي لا عظمة تداني عظمته"},
	{ID: 35, Arabic: "الغفور", Transliteration: "Al-Ghafur", Meaning: "الذي يكثر من ستر الذنوب والتجاوز عنها"},
	{ID: 36, Arabic: "الشكور", Transliteration: "Ash-Shakur", Meaning: "الذي يجازي بالكثير على العمل القليل"},
	{ID: 37, Arabic: "العلي", Transliteration: "Al-Ali", Meaning: "الذي علا بذاته وصفاته على كل شيء"},
	{ID: 38, Arabic: "الكبير", Transliteration: "Al-Kabir", Meaning: "الذي هو أكبر من كل شيء"},
	{ID: 39, Arabic: "الحفيظ", Transliteration: "Al-Hafiz", Meaning: "الذي يحفظ كل شيء ولا يغيب عنه شيء"},
	{ID: 40, Arabic: "المقيت", Transliteration: "Al-Muqit", Meaning: "المقتدر على كل شيء، وخالق الأقوات"},
	{ID: 41, Arabic: "الحسيب", Transliteration: "Al-Hasib", Meaning: "الكافي لعباده"},
	{ID: 42, Arabic: "الجليل", Transliteration: "Al-Jalil", Meaning: "المتصف بصفات الجلال والعظمة"},
	{ID: 43, Arabic: "الكريم", Transliteration: "Al-Karim", Meaning: "الكثير الخير، الدائم الإحسان"},
	{ID: 44, Arabic: "الرقيب", Transliteration: "Ar-Raqib", Meaning: "الذي لا يغيب عنه شيء"},
	{ID: 45, Arabic: "المجيب", Transliteration: "Al-Mujib", Meaning: "الذي يقابل الدعاء والسؤال بالعطاء"},
	{ID: 46, Arabic: "الواسع", Transliteration: "Al-Wasi", Meaning: "الذي وسعت رحمته وعلمه كل شيء"},
	{ID: 47, Arabic: "الحكيم", Transliteration: "Al-Hakim", Meaning: "الذي يضع الأشياء في مواضعها"},
	{ID: 48, Arabic: "الودود", Transliteration: "Al-Wadud", Meaning: "المحب لعباده الصالحين"},
	{ID: 49, Arabic: "المجيد", Transliteration: "Al-Majid", Meaning: "البالغ النهاية في المجد والكرم"},
	{ID: 50, Arabic: "الباعث", Transliteration: "Al-Ba'ith", Meaning: "الذي يبعث الخلق بعد الموت"},
	{ID: 51, Arabic: "الشهيد", Transliteration: "Ash-Shahid", Meaning: "المطلع على جميع الأشياء"},
	{ID: 52, Arabic: "الحق", Transliteration: "Al-Haqq", Meaning: "الثابت الذي لا يزول"},
	{ID: 53, Arabic: "الوكيل", Transliteration: "Al-Wakil", Meaning: "الكفيل بأرزاق العباد ومصالحهم"},
	{ID: 54, Arabic: "القوي", Transliteration: "Al-Qawiyy", Meaning: "الذي لا يعجزه شيء"},
	{ID: 55, Arabic: "المتين", Transliteration: "Al-Matin", Meaning: "الشديد القوة الذي لا تلحقه مشقة"},
	{ID: 56, Arabic: "الولي", Transliteration: "Al-Waliyy", Meaning: "المحب الناصر لأوليائه"},
	{ID: 57, Arabic: "الحميد", Transliteration: "Al-Hamid", Meaning: "المستحق للحمد والثناء"},
	{ID: 58, Arabic: "المحصي", Transliteration: "Al-Muhsi", Meaning: "الذي أحصى كل شيء بعلمه"},
	{ID: 59, Arabic: "المبدئ", Transliteration: "Al-Mubdi", Meaning: "الذي بدأ الخلق من العدم"},
	{ID: 60, Arabic: "المعيد", Transliteration: "Al-Mu'id", Meaning: "الذي يعيد الخلق بعد الموت"},
	{ID: 61, Arabic: "المحيي", Transliteration: "Al-Muhyi", Meaning: "الذي يحيي العظام وهي رميم"},
	{ID: 62, Arabic: "المميت", Transliteration: "Al-Mumit", Meaning: "الذي يميت الأحياء ويقدر الموت"},
	{ID: 63, Arabic: "الحي", Transliteration: "Al-Hayy", Meaning: "الدائم الحياة بلا زوال"},
	{ID: 64, Arabic: "القيوم", Transliteration: "Al-Qayyum", Meaning: "القائم بنفسه، المقيم لغيره"},
	{ID: 65, Arabic: "الواجد", Transliteration: "Al-Wajid", Meaning: "الذي يجد ما يطلب، لا يعوزه شيء"},
	{ID: 66, Arabic: "الماجد", Transliteration: "Al-Majid", Meaning: "الكثير المجد والشرف"},
	{ID: 67, Arabic: "الواحد", Transliteration: "Al-Wahid", Meaning: "المنفرد بالذات والصفات"},
	{ID: 68, Arabic: "الصمد", Transliteration: "As-Samad", Meaning: "السيد المقصود في الحوائج"},
	{ID: 69, Arabic: "القادر", Transliteration: "Al-Qadir", Meaning: "المقدر على كل شيء"},
	{ID: 70, Arabic: "المقتدر", Transliteration: "Al-Muqtadir", Meaning: "المبالغ في القدرة والتمكن"},
	{ID: 71, Arabic: "المقدم", Transliteration: "Al-Muqaddim", Meaning: "الذي يقدم من يشاء"},
	{ID: 72, Arabic: "المؤخر", Transliteration: "Al-Mu'akhkhir", Meaning: "الذي يؤخر من يشاء"},
	{ID: 73, Arabic: "الأول", Transliteration: "Al-Awwal", Meaning: "السابق للأشياء كلها"},
	{ID: 74, Arabic: "الآخر", Transliteration: "Al-Akhir", Meaning: "الباقي بعد فناء خلقه"},
	{ID: 75, Arabic: "الظاهر", Transliteration: "Az-Zahir", Meaning: "الظاهر بآياته ودلائله"},
	{ID: 76, Arabic: "الباطن", Transliteration: "Al-Batin", Meaning: "المحتجب عن الأبصار"},
	{ID: 77, Arabic: "الوالي", Transliteration: "Al-Wali", Meaning: "المالك للأشياء المتصرف فيها"},
	{ID: 78, Arabic: "المتعالي", Transliteration: "Al-Muta'ali", Meaning: "المنزه عن صفات المخلوقين"},
	{ID: 79, Arabic: "البر", Transliteration: "Al-Barr", Meaning: "المحسن العطوف على عباده"},
	{ID: 80, Arabic: "التواب", Transliteration: "At-Tawwab", Meaning: "الذي يقبل التوبة عن عباده"},
	{ID: 81, Arabic: "المنتقم", Transliteration: "Al-Muntaqim", Meaning: "الذي يعاقب العصاة"},
	{ID: 82, Arabic: "العفو", Transliteration: "Al-Afu", Meaning: "الذي يمحو السيئات ويتجاوز عنها"},
	{ID: 83, Arabic: "الرؤوف", Transliteration: "Ar-Ra'uf", Meaning: "الشديد الرحمة والرأفة"},
	{ID: 84, Arabic: "مالك الملك", Transliteration: "Malik-ul-Mulk", Meaning: "الذي يؤتي الملك من يشاء"},
	{ID: 85, Arabic: "ذو الجلال والإكرام", Transliteration: "Dhul-Jalali wal-Ikram", Meaning: "المستحق للتعظيم والإكرام"},
	{ID: 86, Arabic: "المقسط", Transliteration: "Al-Muqsit", Meaning: "العادل في حكمه"},
	{ID: 87, Arabic: "الجامع", Transliteration: "Al-Jami", Meaning: "الذي يجمع الخلائق ليوم لا ريب فيه"},
	{ID: 88, Arabic: "الغني", Transliteration: "Al-Ghani", Meaning: "المستغني عن كل ما سواه"},
	{ID: 89, Arabic: "المغني", Transliteration: "Al-Mughni", Meaning: "الذي يغني من يشاء من خلقه"},
	{ID: 90, Arabic: "المانع", Transliteration: "Al-Mani", Meaning: "الذي يمنع العطاء عمن يشاء ابتلاءً أو حماية"},
	{ID: 91, Arabic: "الضار", Transliteration: "Ad-Darr", Meaning: "الذي يقدر الضرر على من يشاء بحكمته"},
	{ID: 92, Arabic: "النافع", Transliteration: "An-Nafi", Meaning: "الذي يقدر النفع لمن يشاء"},
	{ID: 93, Arabic: "النور", Transliteration: "An-Nur", Meaning: "الذي نور السماوات والأرض"},
	{ID: 94, Arabic: "الهادي", Transliteration: "Al-Hadi", Meaning: "الذي يهدي من يشاء إلى صراطه المستقيم"},
	{ID: 95, Arabic: "البديع", Transliteration: "Al-Badi", Meaning: "الذي خلق الخلق على غير مثال سابق"},
	{ID: 96, Arabic: "الباقي", Transliteration: "Al-Baqi", Meaning: "الدائم الوجود بلا فناء"},
	{ID: 97, Arabic: "الوارث", Transliteration: "Al-Warith", Meaning: "الذي يرث الأرض ومن عليها"},
	{ID: 98, Arabic: "الرشيد", Transliteration: "Ar-Rashid", Meaning: "المرشد لأسباب الصلاح"},
	{ID: 99, Arabic: "الصبور", Transliteration: "As-Sabur", Meaning: "الذي لا يعاجل العصاة بالعقوبة"},
}

// ByID looks up a name. The second return is false for unknown ids.
func ByID(id int) (Name, bool) {
	if id < 1 || id > len(All) {
		return Name{}, false
	}
	return All[id-1], true
}
