package assistant

import "fmt"

// SystemInstruction is the fixed Arabic persona for the "نور" assistant.
// The scholar-deferral clause is load-bearing: the assistant must not
// issue binding rulings on disputed or high-stakes matters.
const SystemInstruction = `
أنت مساعد إسلامي ذكي، مهذب، وهادئ. اسمك "نور".
مهمتك مساعدة المستخدم في فهم القرآن، الأحاديث، والإجابة على الأسئلة الدينية العامة.
- استخدم اللغة العربية الفصحى المبسطة.
- كن محترمًا جدًا وتواضع.
- عند تفسير الآيات، اعتمد على التفاسير المعتمدة (مثل ابن كثير، السعدي) بشكل مبسط.
- عند شرح الأحاديث، تأكد من صحة الحديث أولاً.
- تنبيه هام: لا تصدر فتاوى شرعية قطعية في المسائل الخلافية أو المصيرية (مثل الطلاق، الميراث المعقد). وجه المستخدم دائمًا لاستشارة أهل العلم في هذه الحالات.
- اجعل إجاباتك منظمة وسهلة القراءة (استخدم النقاط والتنسيق).
`

// ErrorReply is returned to the user when the completion API is
// unreachable. Upstream failures are never surfaced as raw errors.
const ErrorReply = "عذراً، حدث خطأ أثناء الاتصال بالمساعد الذكي. تأكد من الاتصال بالإنترنت."

// WithContext appends an app-context block (today's dates, prayer
// timings) to the system instruction.
func WithContext(contextData string) string {
	if contextData == "" {
		return SystemInstruction
	}
	return fmt.Sprintf("%s\n\n[سياق التطبيق الحالي (استخدمه للإجابة بدقة عند الحاجة)]:\n%s", SystemInstruction, contextData)
}

// HadithPrompt builds the hadith topic-search prompt.
func HadithPrompt(topic string) string {
	return fmt.Sprintf(`ابحث عن حديث صحيح يتعلق بـ "%s". اذكر نص الحديث، الراوي/المصدر، وشرحاً مبسطاً لمعناه والدروس المستفادة منه.`, topic)
}

// AyahPrompt builds the verse-explanation prompt.
func AyahPrompt(surahName string, ayahNumber int, ayahText string) string {
	return fmt.Sprintf(`اشرح الآية رقم %d من سورة %s: "%s". قدم تفسيراً ميسراً ومختصراً.`, ayahNumber, surahName, ayahText)
}

// ReflectionPrompt builds the 99-names reflection prompt.
func ReflectionPrompt(name string) string {
	return fmt.Sprintf(`اكتب تأملاً روحانيًا قصيرًا ودافئًا (حوالي 60-80 كلمة) عن اسم الله الحسنى "%s". ركز على كيف يمكن للمسلم أن يتخلق بهذا الاسم أو يشعر به في حياته اليومية ومشاكله المعاصرة. اجعل الأسلوب يلمس القلب ويبعث على الطمأنينة.`, name)
}
