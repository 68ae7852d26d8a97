package i18n

var tables = map[string]map[string]string{
	Uz: {
		"app.title": "OTM boshqaruv paneli",

		"nav.dashboard":   "Bosh sahifa",
		"nav.staff":       "Xodimlar",
		"nav.teachers":    "O'qituvchilar",
		"nav.groups":      "Guruhlar",
		"nav.curricula":   "O'quv rejalar",
		"nav.students":    "Talabalar",
		"nav.buildings":   "Binolar",
		"nav.rooms":       "Xonalar",
		"nav.class_hours": "Dars soatlari",
		"nav.schedules":   "Dars jadvali",
		"nav.ratings":     "Reyting",
		"nav.reports":     "Hisobotlar",
		"nav.topics":      "Mavzular",

		"login.title":    "Tizimga kirish",
		"login.username": "Login",
		"login.password": "Parol",
		"login.role":     "Rol",
		"login.submit":   "Kirish",
		"login.no_token": "Server kirish kalitini qaytarmadi",
		"logout":         "Chiqish",

		"role.otm_admin": "OTM administratori",
		"role.teacher":   "O'qituvchi",

		"common.created":        "Muvaffaqiyatli qo'shildi",
		"common.updated":        "Muvaffaqiyatli yangilandi",
		"common.saved":          "Saqlandi",
		"common.save":           "Saqlash",
		"common.cancel":         "Bekor qilish",
		"common.add":            "Qo'shish",
		"common.edit":           "Tahrirlash",
		"common.delete":         "O'chirish",
		"common.confirm_delete": "Haqiqatan ham o'chirmoqchimisiz?",
		"common.search":         "Qidirish",
		"common.back":           "Orqaga",
		"common.loading":        "Yuklanmoqda...",
		"common.empty":          "Ma'lumot topilmadi",
		"common.prev":           "Oldingi",
		"common.next":           "Keyingi",
		"common.actions":        "Amallar",
		"common.details":        "Batafsil",
		"common.filter":         "Saralash",
		"common.all":            "Barchasi",
		"common.theme":          "Mavzu",
		"common.language":       "Til",
		"common.total":          "Jami",
		"common.redirecting":    "Yo'naltirilmoqda...",
		"common.choose":         "Tanlang",
		"form.unknown_option":   "Ro'yxatda bunday qiymat yo'q",

		"field.full_name":      "F.I.Sh.",
		"field.position":       "Lavozim",
		"field.phone":          "Telefon",
		"field.email":          "Email",
		"field.department":     "Kafedra",
		"field.degree":         "Ilmiy daraja",
		"field.group":          "Guruh",
		"field.birth_date":     "Tug'ilgan sana",
		"field.name":           "Nomi",
		"field.address":        "Manzil",
		"field.floor_count":    "Qavatlar soni",
		"field.room":           "Xona",
		"field.building":       "Bino",
		"field.floor":          "Qavat",
		"field.capacity":       "Sig'imi",
		"field.speciality":     "Mutaxassislik",
		"field.course":         "Kurs",
		"field.curriculum":     "O'quv reja",
		"field.topic":          "Mavzu",
		"field.hours":          "Soat",
		"field.order":          "Tartib",
		"field.student":        "Talaba",
		"field.subject":        "Fan",
		"field.ball":           "Ball",
		"field.weekday":        "Hafta kuni",
		"field.teacher":        "O'qituvchi",
		"field.class_hour":     "Para",
		"field.year":           "Yil",
		"field.semester_count": "Semestrlar soni",
		"field.semester":       "Semestr",
		"field.credits":        "Kredit",

		"classhours.pair":         "para",
		"classhours.start":        "Boshlanishi",
		"classhours.end":          "Tugashi",
		"classhours.edit":         "Dars soatlarini tahrirlash",
		"classhours.append":       "Para qo'shish",
		"classhours.missing_time": "Har bir para uchun boshlanish va tugash vaqtini kiriting",
		"classhours.no_rows":      "Kamida bitta para kerak",

		"curricula.subjects":              "O'quv reja fanlari",
		"curricula.attach":                "Fan biriktirish",
		"curricula.distribute":            "Semestrlarga taqsimlash",
		"curricula.distribute_invalid":    "Taqsimot noto'g'ri to'ldirilgan",
		"curricula.semester_out_of_range": "Semestr o'quv rejadagi semestrlar sonidan oshmasligi kerak",
		"curricula.topics":                "Mavzular",

		"dashboard.health":  "Server holati",
		"dashboard.up":      "Ishlamoqda",
		"dashboard.down":    "Javob bermayapti",
		"dashboard.unknown": "Tekshirilmagan",
		"dashboard.latency": "Kechikish",

		"reports.buildings": "Binolar bo'yicha xonalar",
		"reports.rooms":     "Xonalar",
		"reports.seats":     "O'rinlar",
		"reports.courses":   "Kurslar bo'yicha guruhlar",
		"reports.groups":    "Guruhlar",

		"error.title":          "Xatolik",
		"error.not_found":      "Sahifa topilmadi",
		"error.not_found_text": "Siz so'ragan sahifa mavjud emas",
		"error.back_home":      "Bosh sahifaga qaytish",

		"auth.expired":          "Sessiya muddati tugadi, qaytadan kiring",
		"auth.role_unavailable": "Bu rol uchun avval tizimga kiring",

		"weekday.1": "Dushanba",
		"weekday.2": "Seshanba",
		"weekday.3": "Chorshanba",
		"weekday.4": "Payshanba",
		"weekday.5": "Juma",
		"weekday.6": "Shanba",
	},

	Ru: {
		"app.title": "Панель управления ВУЗа",

		"nav.dashboard":   "Главная",
		"nav.staff":       "Сотрудники",
		"nav.teachers":    "Преподаватели",
		"nav.groups":      "Группы",
		"nav.curricula":   "Учебные планы",
		"nav.students":    "Студенты",
		"nav.buildings":   "Корпуса",
		"nav.rooms":       "Аудитории",
		"nav.class_hours": "Расписание звонков",
		"nav.schedules":   "Расписание",
		"nav.ratings":     "Рейтинг",
		"nav.reports":     "Отчёты",
		"nav.topics":      "Темы",

		"login.title":    "Вход в систему",
		"login.username": "Логин",
		"login.password": "Пароль",
		"login.role":     "Роль",
		"login.submit":   "Войти",
		"login.no_token": "Сервер не вернул ключ доступа",
		"logout":         "Выйти",

		"role.otm_admin": "Администратор ВУЗа",
		"role.teacher":   "Преподаватель",

		"common.created":        "Успешно добавлено",
		"common.updated":        "Успешно обновлено",
		"common.saved":          "Сохранено",
		"common.save":           "Сохранить",
		"common.cancel":         "Отмена",
		"common.add":            "Добавить",
		"common.edit":           "Изменить",
		"common.delete":         "Удалить",
		"common.confirm_delete": "Вы действительно хотите удалить?",
		"common.search":         "Поиск",
		"common.back":           "Назад",
		"common.loading":        "Загрузка...",
		"common.empty":          "Данные не найдены",
		"common.prev":           "Назад",
		"common.next":           "Вперёд",
		"common.actions":        "Действия",
		"common.details":        "Подробнее",
		"common.filter":         "Фильтр",
		"common.all":            "Все",
		"common.theme":          "Тема",
		"common.language":       "Язык",
		"common.total":          "Всего",
		"common.redirecting":    "Перенаправление...",
		"common.choose":         "Выберите",
		"form.unknown_option":   "Такого значения нет в списке",

		"field.full_name":      "Ф.И.О.",
		"field.position":       "Должность",
		"field.phone":          "Телефон",
		"field.email":          "Email",
		"field.department":     "Кафедра",
		"field.degree":         "Учёная степень",
		"field.group":          "Группа",
		"field.birth_date":     "Дата рождения",
		"field.name":           "Название",
		"field.address":        "Адрес",
		"field.floor_count":    "Количество этажей",
		"field.room":           "Аудитория",
		"field.building":       "Корпус",
		"field.floor":          "Этаж",
		"field.capacity":       "Вместимость",
		"field.speciality":     "Специальность",
		"field.course":         "Курс",
		"field.curriculum":     "Учебный план",
		"field.topic":          "Тема",
		"field.hours":          "Часы",
		"field.order":          "Порядок",
		"field.student":        "Студент",
		"field.subject":        "Предмет",
		"field.ball":           "Балл",
		"field.weekday":        "День недели",
		"field.teacher":        "Преподаватель",
		"field.class_hour":     "Пара",
		"field.year":           "Год",
		"field.semester_count": "Количество семестров",
		"field.semester":       "Семестр",
		"field.credits":        "Кредиты",

		"classhours.pair":         "пара",
		"classhours.start":        "Начало",
		"classhours.end":          "Конец",
		"classhours.edit":         "Изменить расписание звонков",
		"classhours.append":       "Добавить пару",
		"classhours.missing_time": "Укажите время начала и конца для каждой пары",
		"classhours.no_rows":      "Нужна хотя бы одна пара",

		"curricula.subjects":              "Предметы учебного плана",
		"curricula.attach":                "Добавить предмет",
		"curricula.distribute":            "Распределить по семестрам",
		"curricula.distribute_invalid":    "Распределение заполнено неверно",
		"curricula.semester_out_of_range": "Семестр не может превышать число семестров плана",
		"curricula.topics":                "Темы",

		"dashboard.health":  "Состояние сервера",
		"dashboard.up":      "Работает",
		"dashboard.down":    "Не отвечает",
		"dashboard.unknown": "Не проверено",
		"dashboard.latency": "Задержка",

		"reports.buildings": "Аудитории по корпусам",
		"reports.rooms":     "Аудитории",
		"reports.seats":     "Места",
		"reports.courses":   "Группы по курсам",
		"reports.groups":    "Группы",

		"error.title":          "Ошибка",
		"error.not_found":      "Страница не найдена",
		"error.not_found_text": "Запрошенная страница не существует",
		"error.back_home":      "Вернуться на главную",

		"auth.expired":          "Сессия истекла, войдите снова",
		"auth.role_unavailable": "Сначала войдите под этой ролью",

		"weekday.1": "Понедельник",
		"weekday.2": "Вторник",
		"weekday.3": "Среда",
		"weekday.4": "Четверг",
		"weekday.5": "Пятница",
		"weekday.6": "Суббота",
	},

	En: {
		"app.title": "Institution dashboard",

		"nav.dashboard":   "Dashboard",
		"nav.staff":       "Staff",
		"nav.teachers":    "Teachers",
		"nav.groups":      "Groups",
		"nav.curricula":   "Curricula",
		"nav.students":    "Students",
		"nav.buildings":   "Buildings",
		"nav.rooms":       "Rooms",
		"nav.class_hours": "Class hours",
		"nav.schedules":   "Schedules",
		"nav.ratings":     "Ratings",
		"nav.reports":     "Reports",
		"nav.topics":      "Topics",

		"login.title":    "Sign in",
		"login.username": "Username",
		"login.password": "Password",
		"login.role":     "Role",
		"login.submit":   "Sign in",
		"login.no_token": "The server did not return a credential",
		"logout":         "Sign out",

		"role.otm_admin": "Institution admin",
		"role.teacher":   "Teacher",

		"common.created":        "Created",
		"common.updated":        "Updated",
		"common.saved":          "Saved",
		"common.save":           "Save",
		"common.cancel":         "Cancel",
		"common.add":            "Add",
		"common.edit":           "Edit",
		"common.delete":         "Delete",
		"common.confirm_delete": "Are you sure you want to delete this?",
		"common.search":         "Search",
		"common.back":           "Back",
		"common.loading":        "Loading...",
		"common.empty":          "Nothing found",
		"common.prev":           "Previous",
		"common.next":           "Next",
		"common.actions":        "Actions",
		"common.details":        "Details",
		"common.filter":         "Filter",
		"common.all":            "All",
		"common.theme":          "Theme",
		"common.language":       "Language",
		"common.total":          "Total",
		"common.redirecting":    "Redirecting...",
		"common.choose":         "Choose",
		"form.unknown_option":   "Not one of the choices",

		"field.full_name":      "Full name",
		"field.position":       "Position",
		"field.phone":          "Phone",
		"field.email":          "Email",
		"field.department":     "Department",
		"field.degree":         "Degree",
		"field.group":          "Group",
		"field.birth_date":     "Birth date",
		"field.name":           "Name",
		"field.address":        "Address",
		"field.floor_count":    "Floors",
		"field.room":           "Room",
		"field.building":       "Building",
		"field.floor":          "Floor",
		"field.capacity":       "Capacity",
		"field.speciality":     "Speciality",
		"field.course":         "Course",
		"field.curriculum":     "Curriculum",
		"field.topic":          "Topic",
		"field.hours":          "Hours",
		"field.order":          "Order",
		"field.student":        "Student",
		"field.subject":        "Subject",
		"field.ball":           "Score",
		"field.weekday":        "Weekday",
		"field.teacher":        "Teacher",
		"field.class_hour":     "Pair",
		"field.year":           "Year",
		"field.semester_count": "Semesters",
		"field.semester":       "Semester",
		"field.credits":        "Credits",

		"classhours.pair":         "pair",
		"classhours.start":        "Start",
		"classhours.end":          "End",
		"classhours.edit":         "Edit class hours",
		"classhours.append":       "Add pair",
		"classhours.missing_time": "Every pair needs a start and an end time",
		"classhours.no_rows":      "At least one pair is required",

		"curricula.subjects":              "Curriculum subjects",
		"curricula.attach":                "Attach subject",
		"curricula.distribute":            "Distribute by semester",
		"curricula.distribute_invalid":    "The distribution is incomplete",
		"curricula.semester_out_of_range": "Semester exceeds the curriculum's semester count",
		"curricula.topics":                "Topics",

		"dashboard.health":  "Backend status",
		"dashboard.up":      "Up",
		"dashboard.down":    "Down",
		"dashboard.unknown": "Not checked yet",
		"dashboard.latency": "Latency",

		"reports.buildings": "Rooms per building",
		"reports.rooms":     "Rooms",
		"reports.seats":     "Seats",
		"reports.courses":   "Groups per course",
		"reports.groups":    "Groups",

		"error.title":          "Error",
		"error.not_found":      "Page not found",
		"error.not_found_text": "The page you asked for does not exist",
		"error.back_home":      "Back to dashboard",

		"auth.expired":          "Your session has expired, please sign in again",
		"auth.role_unavailable": "Sign in with that role first",

		"weekday.1": "Monday",
		"weekday.2": "Tuesday",
		"weekday.3": "Wednesday",
		"weekday.4": "Thursday",
		"weekday.5": "Friday",
		"weekday.6": "Saturday",
	},
}
