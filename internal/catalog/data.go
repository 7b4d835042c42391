package catalog

var defaultChats = []ChatThread{
	{ID: 1, Name: "김서연", Avatar: "김서", LastMessage: "오늘 저녁에 시간 괜찮으세요?", Time: "오후 2:30", UnreadCount: 2, Online: true},
	{ID: 2, Name: "이지은", Avatar: "이지", LastMessage: "사진 정말 잘 나왔네요!", Time: "오후 1:15", UnreadCount: 0, Online: true},
	{ID: 3, Name: "박민준", Avatar: "박민", LastMessage: "다음 주에 만나요", Time: "오전 11:40", UnreadCount: 1, Online: false},
	{ID: 4, Name: "최유나", Avatar: "최유", LastMessage: "ㅋㅋㅋ 진짜요?", Time: "어제", UnreadCount: 5, Online: false},
	{ID: 5, Name: "정하늘", Avatar: "정하", LastMessage: "좋은 하루 보내세요", Time: "어제", UnreadCount: 0, Online: true},
	{ID: 6, Name: "강도윤", Avatar: "강도", LastMessage: "그 카페 가봤어요?", Time: "3일 전", UnreadCount: 3, Online: false},
}

var defaultRanking = []RankedUser{
	{Rank: 1, Name: "한소희", Avatar: "한소", Age: 26, Location: "서울 강남구", Likes: 1243, Bio: "여행과 사진을 좋아해요"},
	{Rank: 2, Name: "윤서준", Avatar: "윤서", Age: 28, Location: "서울 마포구", Likes: 1187, Bio: "주말엔 등산 갑니다"},
	{Rank: 3, Name: "임수아", Avatar: "임수", Age: 25, Location: "부산 해운대구", Likes: 1052, Bio: "바다 보면서 커피 한 잔"},
	{Rank: 4, Name: "오지호", Avatar: "오지", Age: 29, Location: "인천 연수구", Likes: 987, Bio: "요리하는 남자"},
	{Rank: 5, Name: "신예린", Avatar: "신예", Age: 27, Location: "서울 성동구", Likes: 934, Bio: "전시회 같이 가요"},
	{Rank: 6, Name: "조현우", Avatar: "조현", Age: 30, Location: "대구 수성구", Likes: 876, Bio: "강아지 두 마리 키워요"},
	{Rank: 7, Name: "배나연", Avatar: "배나", Age: 24, Location: "서울 송파구", Likes: 811, Bio: "맛집 탐방 중"},
}

var defaultNotifications = []Notification{
	{ID: 1, Kind: NotificationLike, Title: "새로운 좋아요", Body: "한소희님이 회원님을 좋아합니다", Time: "방금 전"},
	{ID: 2, Kind: NotificationMatch, Title: "매칭 성공", Body: "윤서준님과 매칭되었습니다", Time: "10분 전"},
	{ID: 3, Kind: NotificationMessage, Title: "새 메시지", Body: "김서연님이 메시지를 보냈습니다", Time: "1시간 전"},
	{ID: 4, Kind: NotificationFriend, Title: "친구 요청", Body: "임수아님이 친구 요청을 보냈습니다", Time: "어제"},
}
