package conversation

// Button labels. Treated as opaque strings matched exactly, emoji included.
const (
	BtnAbout     = "🎓 О колледже"
	BtnAdmission = "📚 Поступление"
	BtnStudents  = "👨‍🎓 Студентам"
	BtnContacts  = "📞 Контакты"
	BtnSearch    = "🔍 Поиск ответа"
	BtnFAQ       = "❓ Частые вопросы"
	BtnComplaint = "✉️ Жалоба/Предложение"
	BtnStories   = "💼 Истории о профессиях"
	BtnParent    = "👨‍👩‍👧 Родительский кабинет"
	BtnCurator   = "👨‍🏫 Связь с куратором"
	BtnAdmin     = "🛠️ Админ-панель"

	BtnExitMenu  = "⬅️ Выйти в меню"
	BtnBackAdmin = "⬅️ Назад в админ-панель"
	BtnBackList  = "⬅️ Назад к списку"

	BtnPrevPage = "⬅️ Пред."
	BtnNextPage = "След. ➡️"

	BtnChangeName  = "✏️ Изменить имя"
	BtnChangeEmail = "✏️ Изменить email"

	BtnAdminComplaints = "📝 Жалобы"
	BtnAdminStories    = "💼 Истории"
	BtnAdminFAQ        = "❓ Управление FAQ"
	BtnFAQAdd          = "➕ Добавить вопрос"
	BtnFAQDelete       = "🗑 Удалить вопрос"
	BtnClose           = "✅ Закрыть"
)

// User-facing texts.
const (
	textStart = "Привет! Я - официальный бот Колледжа предпринимательства №11. " +
		"Выберите интересующий вас раздел или задайте вопрос:"
	textStartAdmin = "Добро пожаловать! Вам доступна админ-панель. " +
		"Выберите интересующий вас раздел:"
	textHelp = "Я могу помочь вам узнать информацию о Колледже предпринимательства №11.\n\n" +
		"Используйте кнопки меню для навигации или нажмите \"🔍 Поиск ответа\" " +
		"чтобы задать свой вопрос."
	textMainMenu = "Главное меню:"

	textAbout = "Колледж предпринимательства №11 - одно из ведущих учебных заведений Москвы. " +
		"Мы готовим специалистов в области IT, экономики, предпринимательства и других направлений.\n\n" +
		"Выберите интересующий вас раздел или задайте вопрос:"
	textAdmission = "Информация о поступлении:\n\n" +
		"• Приём документов начинается 20 июня\n" +
		"• Необходимые документы: паспорт, аттестат, 4 фото 3x4\n" +
		"• Подробности на сайте: kp11.mskobr.ru\n\n" +
		"Для получения подробной информации нажмите \"🔍 Поиск ответа\" и задайте вопрос"
	textStudents = "Информация для студентов:\n\n" +
		"• Расписание занятий\n" +
		"• Учебные материалы\n" +
		"• Практика и стажировки\n" +
		"• Внеучебная деятельность\n\n" +
		"Для получения подробной информации нажмите \"🔍 Поиск ответа\" и задайте вопрос"
	textContacts = "Контактная информация:\n\n" +
		"📍 Адрес: м. Войковская, Ленинградское шоссе д.13А\n" +
		"📱 Телефон: +7 (499) 150-45-04\n" +
		"🌐 Сайт: kp11.mskobr.ru\n\n" +
		"Для получения подробной информации нажмите \"🔍 Поиск ответа\" и задайте вопрос"
	textCurator = "Для связи с куратором напишите на почту curator@college.edu " +
		"или обратитесь через сайт колледжа."

	textSearchOn = "Режим поиска ответа активирован. Задайте ваш вопрос, и я постараюсь на него ответить.\n" +
		"Для возврата в главное меню нажмите любую кнопку меню."
	textSearchFailed = "Извините, произошла ошибка при обработке вашего запроса. " +
		"Пожалуйста, попробуйте позже или обратитесь на официальный сайт колледжа: kp11.mskobr.ru"
	textSearchNoAnswer = "Извините, не удалось получить ответ на ваш вопрос. " +
		"Попробуйте переформулировать вопрос или используйте раздел \"❓ Частые вопросы\"."
	textSearchHint = "Для получения подробного ответа на ваш вопрос, пожалуйста:\n" +
		"1. Нажмите кнопку \"🔍 Поиск ответа\"\n" +
		"2. Задайте свой вопрос повторно\n\n" +
		"Или воспользуйтесь кнопками меню для быстрой навигации."

	textFAQPick  = "Выберите вопрос:"
	textFAQEmpty = "Список частых вопросов пока пуст."

	textAskName       = "Пожалуйста, представьтесь: как вас зовут?"
	textAskEmail      = "Укажите ваш email для обратной связи:"
	textBadEmail      = "Похоже, это не email. Укажите адрес в формате name@example.com:"
	textAskComplaint  = "Пожалуйста, опишите вашу жалобу или предложение."
	textAskStory      = "Расскажите вашу историю о профессии."
	textComplaintDone = "Спасибо! Ваша жалоба/предложение отправлена администрации."
	textStoryDone     = "Спасибо! Ваша история отправлена администрации."
	textPending       = "У вас уже есть жалоба на рассмотрении. " +
		"Дождитесь её закрытия, прежде чем подавать новую."
	textStoreError = "Извините, произошла ошибка. Попробуйте ещё раз."

	textParentIntro    = "Родительский кабинет.\n\nВаши данные:"
	textNameChanged    = "Имя обновлено."
	textEmailChanged   = "Email обновлён."
	textAskNewName     = "Введите новое имя:"
	textAskNewEmail    = "Введите новый email:"
	textAttachmentHint = "Вложения не поддерживаются. Пожалуйста, отправьте текстом."

	textAdminPanel       = "Админ-панель:"
	textNoActive         = "Активных обращений нет."
	textPickUser         = "Выберите пользователя:"
	textNotFoundOrClosed = "Обращение не найдено или уже закрыто."
	textClosed           = "Обращение закрыто."

	textFAQAdmin        = "Управление частыми вопросами:"
	textFAQAskQuestion  = "Введите текст вопроса:"
	textFAQAskAnswer    = "Введите текст ответа:"
	textFAQAdded        = "Вопрос добавлен."
	textFAQAskDeleteID  = "Введите номер вопроса для удаления:"
	textFAQDeleted      = "Вопрос удалён."
	textFAQDeleteNotFnd = "Вопрос с таким номером не найден."

	textFilerReviewed      = "Ваша жалоба рассмотрена администратором."
	textFilerClosed        = "Ваша жалоба закрыта администратором."
	textFilerStoryReviewed = "Ваша история рассмотрена администратором."
	textFilerStoryClosed   = "Ваша история закрыта администратором."
)

// quickResponses are keyword answers served in the idle state before the
// search hint. Keys are matched as lowercase substrings.
var quickResponses = []struct {
	keyword string
	answer  string
}{
	{"приемная комиссия", "Приемная комиссия КП №11:\n\n📍 Адрес: м. Войковская, Ленинградское шоссе д.13А\n📱 Телефон: +7 (499) 150-45-04\n\n⏰ График работы:\nПн-Пт: 09:00 - 20:00\nСб: 10:00 - 18:00"},
	{"расписание", "Расписание занятий доступно на сайте колледжа в разделе \"Студентам\"."},
	{"поступление", "Информацию о поступлении можно найти в разделе \"Поступление\" на сайте колледжа."},
	{"контакты", "Вы можете связаться с колледжем по телефону или email. Используйте кнопку \"📞 Контакты\" для получения контактной информации."},
	{"документы", "Список необходимых документов можно найти в разделе \"Поступление\" на сайте колледжа."},
	{"график", "График работы приемной комиссии:\nПонедельник - пятница: с 09:00 до 20:00\nСуббота: с 10:00 до 18:00"},
	{"телефон", "Контактный телефон приемной комиссии:\n+7 (499) 150-45-04"},
	{"адрес", "Адрес приемной комиссии:\nм. Войковская, Ленинградское шоссе д.13А"},
}
