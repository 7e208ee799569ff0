package domain

var (
	AUTH_REGISTER_SUCCESS = "Registration successful ✅ Welcome!"
	AUTH_REGISTER_FAILED  = "Registration failed"
	AUTH_LOGIN_SUCCESS    = "Login successful! 🎉"
	AUTH_LOGIN_FAILED     = "Invalid email or password ❌"
	AUTH_UNAUTHORIZED     = "Please log in first ⚠️"

	PROFILE_GET_SUCCESS    = "Profile loaded"
	PROFILE_GET_FAILED     = "Failed to load profile"
	PROFILE_UPDATE_SUCCESS = "Profile updated successfully ✅"
	PROFILE_UPDATE_FAILED  = "Failed to update profile"

	CHAT_SEND_SUCCESS    = "Reply generated"
	CHAT_SEND_FAILED     = "Failed to send message"
	CHAT_EMPTY_MESSAGE   = "⚠️ Please type a message."
	CHAT_HISTORY_SUCCESS = "Chat history loaded"
	CHAT_HISTORY_FAILED  = "Failed to load chat history"
	CHAT_RESET_SUCCESS   = "Chat reset"
	CHAT_RESET_FAILED    = "Failed to reset chat"

	QUIZ_SUBMIT_SUCCESS = "Quiz scored"
	QUIZ_SUBMIT_FAILED  = "Failed to score quiz"
	QUIZ_RESULT_SUCCESS = "Quiz result loaded"
	QUIZ_RESULT_FAILED  = "Please take the quiz first to get recommendations 🎯"

	COLLEGE_LIST_SUCCESS        = "Colleges loaded"
	COLLEGE_LIST_FAILED         = "Failed to load colleges"
	COLLEGE_DETAIL_SUCCESS      = "College loaded"
	COLLEGE_DETAIL_FAILED       = "College not found ⚠️"
	COLLEGE_APPLY_SUCCESS       = "🎉 Application submitted successfully!"
	COLLEGE_ALREADY_APPLIED     = "✅ You have already applied to this college."
	COLLEGE_APPLY_FAILED        = "Failed to apply to college"
	COLLEGE_RECOMMENDED_SUCCESS = "Recommended colleges loaded"
	COLLEGE_RECOMMENDED_FAILED  = "Failed to load recommended colleges"

	EXAM_PREP_SUCCESS = "Exam preparation loaded"
	EXAM_PREP_FAILED  = "Failed to load exam preparation"
	TIMELINE_SUCCESS  = "Timeline loaded"

	PARENTS_DASHBOARD_SUCCESS    = "Parents dashboard loaded"
	PARENTS_COURSES_SUCCESS      = "Course guide loaded"
	PARENTS_SCHOLARSHIPS_SUCCESS = "Scholarships loaded"
	PARENTS_SCHOLARSHIPS_FAILED  = "Failed to load scholarships"
	PARENTS_QUOTAS_SUCCESS       = "Quotas loaded"
	PARENTS_OCCUPATIONS_SUCCESS  = "Occupations loaded"
)
